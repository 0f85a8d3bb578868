// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"couponhub/internal/delivery/http/middleware"
	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// View structs decouple the wire format from the domain entities, so the
// stored secret hash and preloaded ownership chains never leak into
// responses.

type accountView struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Handle    string        `json:"handle"`
	Kind      string        `json:"kind"`
	Staff     bool          `json:"staff"`
	Superuser bool          `json:"superuser"`
	Vendor    *vendorView   `json:"vendor,omitempty"`
	Consumer  *consumerView `json:"consumer,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type vendorView struct {
	Verified   bool `json:"verified"`
	Restricted bool `json:"restricted"`
}

type consumerView struct {
	FullName  string        `json:"fullName"`
	BirthDate *time.Time    `json:"birthDate,omitempty"`
	Interests []catalogView `json:"interests"`
}

type catalogView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type organizationView struct {
	ID       uuid.UUID `json:"id"`
	VendorID uuid.UUID `json:"vendorId"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Verified bool      `json:"verified"`
	Reviewed bool      `json:"reviewed"`
}

type campaignView struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Name           string    `json:"name"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Active         bool      `json:"active"`
}

type outletView struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
}

type couponView struct {
	ID            uuid.UUID     `json:"id"`
	CampaignID    uuid.UUID     `json:"campaignId"`
	TypeID        uuid.UUID     `json:"typeId"`
	CategoryID    uuid.UUID     `json:"categoryId"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Deal          string        `json:"deal"`
	Terms         string        `json:"terms"`
	Amount        int           `json:"amount"`
	Code          string        `json:"code"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	Advertisement bool          `json:"advertisement"`
	Active        bool          `json:"active"`
	Published     bool          `json:"published"`
	OutletIDs     []uuid.UUID   `json:"outletIds"`
	Interests     []catalogView `json:"interests"`
}

func newAccountView(account *entity.Account) accountView {
	view := accountView{
		ID:        account.ID,
		Email:     account.Email,
		Handle:    account.Handle,
		Kind:      string(account.Kind),
		Staff:     account.Staff,
		Superuser: account.Superuser,
		CreatedAt: account.CreatedAt,
	}
	if account.Vendor != nil {
		view.Vendor = &vendorView{
			Verified:   account.Vendor.Verified,
			Restricted: account.Vendor.Restricted,
		}
	}
	if account.Consumer != nil {
		view.Consumer = &consumerView{
			FullName:  account.Consumer.FullName,
			BirthDate: account.Consumer.BirthDate,
			Interests: newInterestViews(account.Consumer.Interests),
		}
	}

	return view
}

func newInterestViews(interests []entity.Interest) []catalogView {
	views := make([]catalogView, 0, len(interests))
	for i := range interests {
		views = append(views, catalogView{ID: interests[i].ID, Name: interests[i].Name})
	}

	return views
}

func newOrganizationView(org *entity.Organization) organizationView {
	return organizationView{
		ID:       org.ID,
		VendorID: org.VendorAccountID,
		Name:     org.Name,
		Address:  org.Address,
		Verified: org.Verified,
		Reviewed: org.Reviewed,
	}
}

func newOrganizationViews(orgs []entity.Organization) []organizationView {
	views := make([]organizationView, 0, len(orgs))
	for i := range orgs {
		views = append(views, newOrganizationView(&orgs[i]))
	}

	return views
}

func newCampaignView(campaign *entity.Campaign) campaignView {
	return campaignView{
		ID:             campaign.ID,
		OrganizationID: campaign.OrganizationID,
		Name:           campaign.Name,
		Start:          campaign.Start,
		End:            campaign.End,
		Active:         campaign.Active,
	}
}

func newCampaignViews(campaigns []entity.Campaign) []campaignView {
	views := make([]campaignView, 0, len(campaigns))
	for i := range campaigns {
		views = append(views, newCampaignView(&campaigns[i]))
	}

	return views
}

func newOutletView(outlet *entity.Outlet) outletView {
	return outletView{
		ID:             outlet.ID,
		OrganizationID: outlet.OrganizationID,
		Name:           outlet.Name,
		Description:    outlet.Description,
		Address:        outlet.Address,
		Latitude:       outlet.Latitude,
		Longitude:      outlet.Longitude,
	}
}

func newOutletViews(outlets []entity.Outlet) []outletView {
	views := make([]outletView, 0, len(outlets))
	for i := range outlets {
		views = append(views, newOutletView(&outlets[i]))
	}

	return views
}

func newCouponView(coupon *entity.Coupon) couponView {
	outletIDs := make([]uuid.UUID, 0, len(coupon.Outlets))
	for i := range coupon.Outlets {
		outletIDs = append(outletIDs, coupon.Outlets[i].ID)
	}

	return couponView{
		ID:            coupon.ID,
		CampaignID:    coupon.CampaignID,
		TypeID:        coupon.TypeID,
		CategoryID:    coupon.CategoryID,
		Name:          coupon.Name,
		Description:   coupon.Description,
		Deal:          coupon.Deal,
		Terms:         coupon.Terms,
		Amount:        coupon.Amount,
		Code:          coupon.Code,
		Start:         coupon.Start,
		End:           coupon.End,
		Advertisement: coupon.Advertisement,
		Active:        coupon.Active,
		Published:     coupon.Published,
		OutletIDs:     outletIDs,
		Interests:     newInterestViews(coupon.Interests),
	}
}

func newCouponViews(coupons []entity.Coupon) []couponView {
	views := make([]couponView, 0, len(coupons))
	for i := range coupons {
		views = append(views, newCouponView(&coupons[i]))
	}

	return views
}

// requesterID extracts the authenticated account ID set by the auth
// middleware.
func requesterID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)

	return id, ok
}
