// Package presenter переводит доменные сущности в DTO REST API и обратно.
package presenter

import (
	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"

	"github.com/AlekSi/pointer"
)

func Address(a entities.Address) dto.Address {
	return dto.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func AddressToDomain(a dto.Address) entities.Address {
	return entities.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func AddressPtrToDomain(a *dto.Address) *entities.Address {
	if a == nil {
		return nil
	}
	return pointer.To(AddressToDomain(*a))
}

func UserSummary(s *entities.UserSummary) dto.UserSummary {
	if s == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		Id:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}

func User(u *entities.User) dto.User {
	return dto.User{
		Id:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role.String(),
		Phone:       u.Phone,
		Address:     Address(u.Address),
		AvatarUrl:   u.AvatarURL,
		IsActive:    u.IsActive,
		IsAvailable: u.IsAvailable,
		DeletedAt:   u.DeletedAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func Users(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for i := range users {
		res = append(res, User(&users[i]))
	}
	return res
}

func History(history []entities.StatusHistoryEntry) []dto.StatusHistoryEntry {
	res := make([]dto.StatusHistoryEntry, 0, len(history))
	for _, h := range history {
		res = append(res, dto.StatusHistoryEntry{
			Status:    h.Status.String(),
			Timestamp: h.Timestamp,
			Note:      h.Note,
			UpdatedBy: pointer.ToStringOrNil(h.UpdatedBy),
		})
	}
	return res
}

func Order(o *entities.Order) dto.Order {
	res := dto.Order{
		Id:                    o.ID,
		TrackingNumber:        o.TrackingNumber,
		User:                  UserSummary(o.User),
		SenderName:            o.SenderName,
		SenderPhone:           o.SenderPhone,
		ReceiverName:          o.ReceiverName,
		ReceiverPhone:         o.ReceiverPhone,
		PickupAddress:         Address(o.PickupAddress),
		DeliveryAddress:       Address(o.DeliveryAddress),
		PackageType:           o.PackageType,
		Weight:                o.Weight,
		Description:           o.Description,
		Distance:              o.Distance,
		Price:                 o.Price,
		EtaMinutes:            o.ETAMinutes,
		EtaSource:             o.ETASource.String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		Status:                o.Status.String(),
		StatusHistory:         History(o.StatusHistory),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	if res.User.Id == "" {
		res.User.Id = o.UserID
	}

	switch {
	case o.Courier != nil:
		res.Courier = pointer.To(UserSummary(o.Courier))
	case o.CourierID != "":
		res.Courier = &dto.UserSummary{Id: o.CourierID}
	}
	return res
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for i := range orders {
		res = append(res, Order(&orders[i]))
	}
	return res
}

func Tracking(t *entities.Tracking) dto.Tracking {
	return dto.Tracking{
		TrackingNumber:        t.TrackingNumber,
		Status:                t.Status.String(),
		StatusHistory:         History(t.StatusHistory),
		PickupCity:            t.PickupCity,
		DeliveryCity:          t.DeliveryCity,
		EstimatedDeliveryTime: t.EstimatedDeliveryTime,
		ActualDeliveryTime:    t.ActualDeliveryTime,
		CreatedAt:             t.CreatedAt,
	}
}

func Quote(q *entities.Quote) dto.Quote {
	return dto.Quote{
		Distance:              q.Distance,
		Price:                 q.Price,
		EtaMinutes:            q.ETAMinutes,
		EtaSource:             q.ETASource.String(),
		EstimatedDeliveryTime: q.EstimatedDeliveryTime,
	}
}

func Application(a *entities.CourierApplication) dto.CourierApplication {
	res := dto.CourierApplication{
		Id:              a.ID,
		User:            UserSummary(a.User),
		VehicleType:     a.VehicleType.String(),
		VehicleNumber:   a.VehicleNumber,
		LicenseNumber:   a.LicenseNumber,
		ExperienceYears: a.ExperienceYears,
		Availability:    a.Availability.String(),
		Phone:           a.Phone,
		Address:         Address(a.Address),
		Status:          a.Status.String(),
		AdminNotes:      a.AdminNotes,
		ReviewedBy:      pointer.ToStringOrNil(a.ReviewedBy),
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if res.User.Id == "" {
		res.User.Id = a.UserID
	}
	return res
}

func Applications(applications []entities.CourierApplication) []dto.CourierApplication {
	res := make([]dto.CourierApplication, 0, len(applications))
	for i := range applications {
		res = append(res, Application(&applications[i]))
	}
	return res
}

func Stats(s *entities.Summary) dto.Stats {
	res := dto.Stats{
		UsersByRole:      make(map[string]int64, len(entities.Roles)),
		OrdersByStatus:   make(map[string]int64, len(entities.OrderStatuses)),
		TotalOrders:      s.Orders.Total,
		DeliveredRevenue: s.Orders.DeliveredRevenue,
	}
	for _, role := range entities.Roles {
		res.UsersByRole[role.String()] = s.UsersByRole[role]
	}
	for _, status := range entities.OrderStatuses {
		res.OrdersByStatus[status.String()] = s.Orders.ByStatus[status]
	}
	return res
}

func Image(img *entities.Image) dto.Image {
	return dto.Image{
		Url:      img.URL,
		PublicId: img.PublicID,
	}
}
