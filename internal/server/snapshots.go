package server

import (
	"encoding/json"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

// Snapshot builders translate repository rows into the field names the
// audit kind configs track. A nil row stays nil so the diff engine sees
// pure creations and deletions.

func orderSnapshot(o *repository.Order) audit.Snapshot {
	if o == nil {
		return nil
	}
	snap := audit.Snapshot{
		"cargoName":        o.CargoName,
		"cargoWeight":      o.CargoWeight,
		"flowStatus":       o.FlowStatus,
		"priceSales":       o.PriceSales,
		"pricePurchase":    o.PricePurchase,
		"driverId":         strOrNil(o.DriverID),
		"vehicleNumber":    strOrNil(o.VehicleNumber),
		"loadingAddress":   o.LoadingAddress,
		"unloadingAddress": o.UnloadingAddress,
	}
	if meta := metadataMap(o.Metadata); meta != nil {
		snap["metadata"] = meta
	}
	return snap
}

func companySnapshot(c *repository.Company) audit.Snapshot {
	if c == nil {
		return nil
	}
	return audit.Snapshot{
		"name":           c.Name,
		"businessNumber": c.BusinessNumber,
		"companyType":    c.CompanyType,
		"status":         c.Status,
		"phone":          c.Phone,
		"representative": c.Representative,
	}
}

func driverSnapshot(d *repository.Driver) audit.Snapshot {
	if d == nil {
		return nil
	}
	return audit.Snapshot{
		"name":          d.Name,
		"phone":         d.Phone,
		"vehicleNumber": d.VehicleNumber,
		"companyId":     strOrNil(d.CompanyID),
		"status":        d.Status,
	}
}

func userSnapshot(u *repository.User) audit.Snapshot {
	if u == nil {
		return nil
	}
	return audit.Snapshot{
		"name":        u.Name,
		"email":       u.Email,
		"accessLevel": u.AccessLevel,
		"role":        u.Role,
		"status":      u.Status,
	}
}

func addressSnapshot(a *repository.Address) audit.Snapshot {
	if a == nil {
		return nil
	}
	snap := audit.Snapshot{
		"alias":         a.Alias,
		"roadAddress":   a.RoadAddress,
		"detailAddress": a.DetailAddress,
		"companyId":     a.CompanyID,
	}
	if meta := metadataMap(a.Metadata); meta != nil {
		snap["metadata"] = meta
	}
	return snap
}

func warningSnapshot(wr *repository.Warning) audit.Snapshot {
	if wr == nil {
		return nil
	}
	return audit.Snapshot{
		"content":   wr.Content,
		"severity":  wr.Severity,
		"sortOrder": wr.SortOrder,
	}
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func metadataMap(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}
	return meta
}
