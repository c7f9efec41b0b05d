package order

import (
	"courier-network/internal/entities"
	"courier-network/internal/repository"

	"github.com/AlekSi/pointer"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:                    o.ID,
		TrackingNumber:        o.TrackingNumber,
		UserID:                o.UserID,
		CourierID:             o.CourierID,
		SenderName:            o.SenderName,
		SenderPhone:           o.SenderPhone,
		ReceiverName:          o.ReceiverName,
		ReceiverPhone:         o.ReceiverPhone,
		PickupAddress:         repository.AddressToDomain(o.PickupAddress),
		DeliveryAddress:       repository.AddressToDomain(o.DeliveryAddress),
		PackageType:           o.PackageType,
		Weight:                o.Weight,
		Description:           o.Description,
		Distance:              o.Distance,
		Price:                 o.Price,
		ETAMinutes:            o.ETAMinutes,
		ETASource:             entities.ETASource(o.ETASource),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		Status:                entities.OrderStatus(o.Status),
		StatusHistory:         make([]entities.StatusHistoryEntry, 0, len(o.History)),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
		User: &entities.UserSummary{
			ID:    o.UserID,
			Name:  o.UserName,
			Email: o.UserEmail,
			Phone: o.UserPhone,
		},
	}

	if o.CourierID != "" {
		order.Courier = &entities.UserSummary{
			ID:    o.CourierID,
			Name:  o.CourierName,
			Email: o.CourierEmail,
			Phone: o.CourierPhone,
		}
	}

	for _, h := range o.History {
		order.StatusHistory = append(order.StatusHistory, entities.StatusHistoryEntry{
			Status:    entities.OrderStatus(h.Status),
			Timestamp: h.CreatedAt,
			Note:      h.Note,
			UpdatedBy: h.UpdatedBy,
		})
	}

	return order
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:                    o.ID,
		TrackingNumber:        o.TrackingNumber,
		UserID:                o.UserID,
		CourierID:             o.CourierID,
		SenderName:            o.SenderName,
		SenderPhone:           o.SenderPhone,
		ReceiverName:          o.ReceiverName,
		ReceiverPhone:         o.ReceiverPhone,
		PickupAddress:         repository.AddressFromDomain(o.PickupAddress),
		DeliveryAddress:       repository.AddressFromDomain(o.DeliveryAddress),
		PackageType:           o.PackageType,
		Weight:                o.Weight,
		Description:           o.Description,
		Distance:              o.Distance,
		Price:                 o.Price,
		ETAMinutes:            o.ETAMinutes,
		ETASource:             o.ETASource.String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		Status:                o.Status.String(),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	for _, h := range o.StatusHistory {
		orderDB.History = append(orderDB.History, StatusHistoryDB{
			OrderID:   o.ID,
			Status:    h.Status.String(),
			Note:      h.Note,
			UpdatedBy: h.UpdatedBy,
			CreatedAt: h.Timestamp,
		})
	}

	return orderDB
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:                    orderModify.ID,
		SenderName:            orderModify.SenderName,
		SenderPhone:           orderModify.SenderPhone,
		ReceiverName:          orderModify.ReceiverName,
		ReceiverPhone:         orderModify.ReceiverPhone,
		PackageType:           orderModify.PackageType,
		Weight:                orderModify.Weight,
		Description:           orderModify.Description,
		Distance:              orderModify.Distance,
		Price:                 orderModify.Price,
		ETAMinutes:            orderModify.ETAMinutes,
		EstimatedDeliveryTime: orderModify.EstimatedDeliveryTime,
	}
	if orderModify.PickupAddress != nil {
		orderDB.PickupAddress = pointer.To(repository.AddressFromDomain(*orderModify.PickupAddress))
	}
	if orderModify.DeliveryAddress != nil {
		orderDB.DeliveryAddress = pointer.To(repository.AddressFromDomain(*orderModify.DeliveryAddress))
	}
	if orderModify.ETASource != nil {
		orderDB.ETASource = pointer.To(orderModify.ETASource.String())
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
