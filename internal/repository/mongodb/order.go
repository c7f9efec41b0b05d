package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	orderservice "courier-network/internal/service/order"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type statusEntryDoc struct {
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
	Note      string    `bson:"note"`
	UpdatedBy string    `bson:"updated_by,omitempty"`
}

type orderDoc struct {
	ID                    string               `bson:"_id"`
	TrackingNumber        string               `bson:"tracking_number"`
	UserID                string               `bson:"user_id"`
	CourierID             string               `bson:"courier_id,omitempty"`
	SenderName            string               `bson:"sender_name"`
	SenderPhone           string               `bson:"sender_phone"`
	ReceiverName          string               `bson:"receiver_name"`
	ReceiverPhone         string               `bson:"receiver_phone"`
	PickupAddress         repository.AddressDB `bson:"pickup_address"`
	DeliveryAddress       repository.AddressDB `bson:"delivery_address"`
	PackageType           string               `bson:"package_type"`
	Weight                float64              `bson:"weight"`
	Description           string               `bson:"description"`
	Distance              float64              `bson:"distance"`
	Price                 float64              `bson:"price"`
	ETAMinutes            int                  `bson:"eta_minutes"`
	ETASource             string               `bson:"eta_source"`
	EstimatedDeliveryTime *time.Time           `bson:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time           `bson:"actual_delivery_time"`
	Status                string               `bson:"status"`
	StatusHistory         []statusEntryDoc     `bson:"status_history"`
	CreatedAt             time.Time            `bson:"created_at"`
	UpdatedAt             time.Time            `bson:"updated_at"`
}

func orderToDoc(o entities.Order) orderDoc {
	doc := orderDoc{
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
		StatusHistory:         make([]statusEntryDoc, 0, len(o.StatusHistory)),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	for _, h := range o.StatusHistory {
		doc.StatusHistory = append(doc.StatusHistory, entryToDoc(h))
	}
	return doc
}

func entryToDoc(h entities.StatusHistoryEntry) statusEntryDoc {
	return statusEntryDoc{
		Status:    h.Status.String(),
		Timestamp: h.Timestamp.UTC(),
		Note:      h.Note,
		UpdatedBy: h.UpdatedBy,
	}
}

func (d *orderDoc) toDomain(people map[string]*entities.UserSummary) *entities.Order {
	o := &entities.Order{
		ID:                    d.ID,
		TrackingNumber:        d.TrackingNumber,
		UserID:                d.UserID,
		User:                  people[d.UserID],
		CourierID:             d.CourierID,
		SenderName:            d.SenderName,
		SenderPhone:           d.SenderPhone,
		ReceiverName:          d.ReceiverName,
		ReceiverPhone:         d.ReceiverPhone,
		PickupAddress:         repository.AddressToDomain(d.PickupAddress),
		DeliveryAddress:       repository.AddressToDomain(d.DeliveryAddress),
		PackageType:           d.PackageType,
		Weight:                d.Weight,
		Description:           d.Description,
		Distance:              d.Distance,
		Price:                 d.Price,
		ETAMinutes:            d.ETAMinutes,
		ETASource:             entities.ETASource(d.ETASource),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		Status:                entities.OrderStatus(d.Status),
		StatusHistory:         make([]entities.StatusHistoryEntry, 0, len(d.StatusHistory)),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
	if d.CourierID != "" {
		o.Courier = people[d.CourierID]
	}
	for _, h := range d.StatusHistory {
		o.StatusHistory = append(o.StatusHistory, entities.StatusHistoryEntry{
			Status:    entities.OrderStatus(h.Status),
			Timestamp: h.Timestamp,
			Note:      h.Note,
			UpdatedBy: h.UpdatedBy,
		})
	}
	return o
}

var activeStatusFilter = bson.D{{Key: "$nin", Value: bson.A{
	entities.OrderDelivered.String(),
	entities.OrderCancelled.String(),
}}}

type OrderRepository struct {
	store *Store
	now   func() time.Time
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{
		store: store,
		now:   time.Now,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	doc := orderToDoc(o)
	doc.ID = uuid.NewString()

	if _, err := r.store.col(ColOrders).InsertOne(ctx, doc); err != nil {
		if repository.IsMongoDuplicateKey(err) {
			return nil, orderservice.ErrTrackingNumberUsed
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return r.GetByID(ctx, doc.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *OrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error) {
	return r.getOne(ctx, bson.D{{Key: "tracking_number", Value: trackingNumber}})
}

func (r *OrderRepository) Update(ctx context.Context, m entities.OrderModify) (*entities.Order, error) {
	if m.ID == nil {
		return nil, orderservice.ErrOrderNotFound
	}

	set := bson.D{}
	if m.SenderName != nil {
		set = append(set, bson.E{Key: "sender_name", Value: *m.SenderName})
	}
	if m.SenderPhone != nil {
		set = append(set, bson.E{Key: "sender_phone", Value: *m.SenderPhone})
	}
	if m.ReceiverName != nil {
		set = append(set, bson.E{Key: "receiver_name", Value: *m.ReceiverName})
	}
	if m.ReceiverPhone != nil {
		set = append(set, bson.E{Key: "receiver_phone", Value: *m.ReceiverPhone})
	}
	if m.PickupAddress != nil {
		set = append(set, bson.E{Key: "pickup_address", Value: repository.AddressFromDomain(*m.PickupAddress)})
	}
	if m.DeliveryAddress != nil {
		set = append(set, bson.E{Key: "delivery_address", Value: repository.AddressFromDomain(*m.DeliveryAddress)})
	}
	if m.PackageType != nil {
		set = append(set, bson.E{Key: "package_type", Value: *m.PackageType})
	}
	if m.Weight != nil {
		set = append(set, bson.E{Key: "weight", Value: *m.Weight})
	}
	if m.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *m.Description})
	}
	if m.Distance != nil {
		set = append(set, bson.E{Key: "distance", Value: *m.Distance})
	}
	if m.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *m.Price})
	}
	if m.ETAMinutes != nil {
		set = append(set, bson.E{Key: "eta_minutes", Value: *m.ETAMinutes})
	}
	if m.ETASource != nil {
		set = append(set, bson.E{Key: "eta_source", Value: m.ETASource.String()})
	}
	if m.EstimatedDeliveryTime != nil {
		set = append(set, bson.E{Key: "estimated_delivery_time", Value: m.EstimatedDeliveryTime.UTC()})
	}
	set = append(set, bson.E{Key: "updated_at", Value: r.now().UTC()})

	return r.updateOne(ctx, *m.ID, bson.D{{Key: "$set", Value: set}})
}

// AppendStatus статус и запись истории меняются одним обновлением документа.
func (r *OrderRepository) AppendStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	set := bson.D{
		{Key: "status", Value: update.Entry.Status.String()},
		{Key: "updated_at", Value: update.Entry.Timestamp.UTC()},
	}
	if update.ActualDeliveryTime != nil {
		set = append(set, bson.E{Key: "actual_delivery_time", Value: update.ActualDeliveryTime.UTC()})
	}

	changes := bson.D{
		{Key: "$push", Value: bson.D{{Key: "status_history", Value: entryToDoc(update.Entry)}}},
	}
	if update.CourierID != nil {
		if *update.CourierID == "" {
			changes = append(changes, bson.E{Key: "$unset", Value: bson.D{{Key: "courier_id", Value: ""}}})
		} else {
			set = append(set, bson.E{Key: "courier_id", Value: *update.CourierID})
		}
	}
	changes = append(changes, bson.E{Key: "$set", Value: set})

	return r.updateOne(ctx, update.OrderID, changes)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.store.col(ColOrders).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if res.DeletedCount == 0 {
		return orderservice.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	query := bson.D{}
	if filter.UserID != "" {
		query = append(query, bson.E{Key: "user_id", Value: filter.UserID})
	}
	if filter.CourierID != "" {
		query = append(query, bson.E{Key: "courier_id", Value: filter.CourierID})
	}
	if filter.Status != nil {
		query = append(query, bson.E{Key: "status", Value: filter.Status.String()})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	docs, err := findMany[orderDoc](ctx, r.store.col(ColOrders), query, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return r.toDomainList(ctx, docs)
}

func (r *OrderRepository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	count, err := r.store.col(ColOrders).CountDocuments(ctx, bson.D{
		{Key: "user_id", Value: userID},
		{Key: "status", Value: activeStatusFilter},
	})
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countactivebyuser error: %w", err)
	}
	return count, nil
}

func (r *OrderRepository) UnassignCourier(ctx context.Context, courierID string, entry entities.StatusHistoryEntry) (int64, error) {
	res, err := r.store.col(ColOrders).UpdateMany(ctx,
		bson.D{
			{Key: "courier_id", Value: courierID},
			{Key: "status", Value: activeStatusFilter},
		},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "status", Value: entry.Status.String()},
				{Key: "updated_at", Value: entry.Timestamp.UTC()},
			}},
			{Key: "$unset", Value: bson.D{{Key: "courier_id", Value: ""}}},
			{Key: "$push", Value: bson.D{{Key: "status_history", Value: entryToDoc(entry)}}},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository unassigncourier error: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *OrderRepository) Stats(ctx context.Context) (*entities.OrderStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := r.store.col(ColOrders).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &entities.OrderStats{
		ByStatus: make(map[entities.OrderStatus]int64, len(entities.OrderStatuses)),
	}
	for cursor.Next(ctx) {
		var row struct {
			Status  string  `bson:"_id"`
			Count   int64   `bson:"count"`
			Revenue float64 `bson:"revenue"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
		}
		status := entities.OrderStatus(row.Status)
		stats.ByStatus[status] = row.Count
		stats.Total += row.Count
		if status == entities.OrderDelivered {
			stats.DeliveredRevenue = row.Revenue
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}
	return stats, nil
}

func (r *OrderRepository) getOne(ctx context.Context, filter bson.D) (*entities.Order, error) {
	doc, err := findOne[orderDoc](ctx, r.store.col(ColOrders), filter)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	if doc == nil {
		return nil, orderservice.ErrOrderNotFound
	}

	orders, err := r.toDomainList(ctx, []orderDoc{*doc})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *OrderRepository) updateOne(ctx context.Context, id string, update bson.D) (*entities.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDoc
	err := r.store.col(ColOrders).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orders, err := r.toDomainList(ctx, []orderDoc{doc})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *OrderRepository) toDomainList(ctx context.Context, docs []orderDoc) ([]entities.Order, error) {
	seen := make(map[string]struct{}, len(docs)*2)
	ids := make([]string, 0, len(docs)*2)
	for i := range docs {
		for _, id := range []string{docs[i].UserID, docs[i].CourierID} {
			if _, ok := seen[id]; ok || id == "" {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	people, err := r.store.summaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository users lookup error: %w", err)
	}

	orders := make([]entities.Order, len(docs))
	for i := range docs {
		orders[i] = *docs[i].toDomain(people)
	}
	return orders, nil
}
