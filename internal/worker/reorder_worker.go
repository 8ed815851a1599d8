package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/repairdeck/repairshop-service/internal/events"
	"github.com/repairdeck/repairshop-service/internal/service"
)

// ReorderWorker periodically sweeps inventory for items at or below their
// reorder threshold and emits a low-stock event per item.
type ReorderWorker struct {
	inventory  *service.InventoryService
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cron       *cron.Cron
}

// NewReorderWorker constructs the worker.
func NewReorderWorker(inventory *service.InventoryService, dispatcher events.Dispatcher, logger *zap.Logger) *ReorderWorker {
	return &ReorderWorker{
		inventory:  inventory,
		dispatcher: dispatcher,
		logger:     logger,
		cron:       cron.New(),
	}
}

// Start schedules the sweep with the given cron spec and begins running.
func (w *ReorderWorker) Start(spec string) error {
	if _, err := w.cron.AddFunc(spec, w.sweep); err != nil {
		return err
	}
	w.cron.Start()
	w.logger.Info("reorder worker started", zap.String("spec", spec))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (w *ReorderWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *ReorderWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := w.inventory.ListLowStock(ctx)
	if err != nil {
		w.logger.Error("low stock sweep failed", zap.Error(err))
		return
	}
	for _, item := range items {
		minQuantity := 0
		if item.MinQuantity != nil {
			minQuantity = *item.MinQuantity
		}
		_ = w.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInventoryLowStock,
			Timestamp: time.Now(),
			Payload: events.InventoryLowStockPayload{
				ItemID:      item.ID,
				SKU:         item.SKU,
				Name:        item.Name,
				Quantity:    item.Quantity,
				MinQuantity: minQuantity,
			},
		})
	}
	if len(items) > 0 {
		w.logger.Info("low stock sweep", zap.Int("items", len(items)))
	}
}
