package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type InstrumentedParkingLot struct {
	*ParkingLot
	telemetry *TelemetryProvider

	// Metrics
	parkOperations    metric.Int64Counter
	removeOperations  metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
	capacityGauge     metric.Int64UpDownCounter
}

func NewInstrumentedParkingLot(numFloors, spotsPerFloor int, telemetry *TelemetryProvider) (*InstrumentedParkingLot, error) {
	baseParkingLot := NewParkingLot(numFloors, spotsPerFloor)

	meter := telemetry.Meter()

	parkOperations, err := meter.Int64Counter("park_operations_total",
		metric.WithDescription("Total number of park operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	removeOperations, err := meter.Int64Counter("remove_operations_total",
		metric.WithDescription("Total number of remove operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("garage_occupied_spots",
		metric.WithDescription("Current number of occupied parking spots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of parking garage operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	capacityGauge, err := meter.Int64UpDownCounter("garage_total_spots",
		metric.WithDescription("Total number of parking spots across all floors"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ipl := &InstrumentedParkingLot{
		ParkingLot:        baseParkingLot,
		telemetry:         telemetry,
		parkOperations:    parkOperations,
		removeOperations:  removeOperations,
		occupancyGauge:    occupancyGauge,
		operationDuration: operationDuration,
		capacityGauge:     capacityGauge,
	}

	capacityGauge.Add(context.Background(), int64(numFloors*spotsPerFloor))

	return ipl, nil
}

func (ipl *InstrumentedParkingLot) Park(ctx context.Context, vehicle Vehicle) (Location, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_garage.park",
		trace.WithAttributes(
			attribute.String("vehicle.license_plate", vehicle.LicensePlate),
			attribute.String("vehicle.type", vehicle.Type.String()),
			attribute.Int("vehicle.required_spots", vehicle.RequiredSpots()),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("finding_available_spots")

	loc, err := ipl.ParkingLot.Park(vehicle)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "park"),
		attribute.String("vehicle_type", vehicle.Type.String()),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ipl.parkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("allocated_floor", loc.Floor),
		)
		span.SetAttributes(
			attribute.Int("allocated_floor", loc.Floor),
			attribute.IntSlice("allocated_spots", loc.Spots),
		)
		span.AddEvent("spots_allocated", trace.WithAttributes(
			attribute.Int("floor", loc.Floor),
			attribute.IntSlice("spots", loc.Spots),
		))

		ipl.parkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ipl.occupancyGauge.Add(ctx, int64(len(loc.Spots)))
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return loc, err
}

func (ipl *InstrumentedParkingLot) Release(ctx context.Context, licensePlate string) (int, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_garage.remove",
		trace.WithAttributes(
			attribute.String("vehicle.license_plate", licensePlate),
		))
	defer span.End()

	start := time.Now()

	// Spot count is needed before the release erases the record.
	var freedSpots int
	if loc, err := ipl.ParkingLot.Locate(licensePlate); err == nil {
		freedSpots = len(loc.Spots)
	}

	span.AddEvent("releasing_spots")

	floor, err := ipl.ParkingLot.Release(licensePlate)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "remove"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("floor", floor),
		)
		span.SetAttributes(attribute.Int("floor", floor))
		span.AddEvent("spots_released")
		ipl.occupancyGauge.Add(ctx, -int64(freedSpots))
	}

	ipl.removeOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return floor, err
}

func (ipl *InstrumentedParkingLot) AvailablePerFloor(ctx context.Context) []int {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_garage.available_spots")
	defer span.End()

	start := time.Now()

	available := ipl.ParkingLot.AvailablePerFloor()

	duration := time.Since(start).Seconds()

	total := 0
	for _, n := range available {
		total += n
	}
	span.SetAttributes(
		attribute.Int("floors", len(available)),
		attribute.Int("available_total", total),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "available_spots"),
		attribute.String("status", "success"),
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return available
}

func (ipl *InstrumentedParkingLot) IsFull(ctx context.Context) bool {
	tracer := ipl.telemetry.Tracer()
	_, span := tracer.Start(ctx, "parking_garage.is_full")
	defer span.End()

	full := ipl.ParkingLot.IsFull()
	span.SetAttributes(attribute.Bool("garage.full", full))

	return full
}

func (ipl *InstrumentedParkingLot) Locate(ctx context.Context, licensePlate string) (Location, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_garage.find_vehicle",
		trace.WithAttributes(
			attribute.String("vehicle.license_plate", licensePlate),
		))
	defer span.End()

	start := time.Now()

	loc, err := ipl.ParkingLot.Locate(licensePlate)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "find_vehicle"),
	}

	if err != nil {
		span.AddEvent("vehicle_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.SetAttributes(
			attribute.Int("floor", loc.Floor),
			attribute.IntSlice("spots", loc.Spots),
		)
		span.AddEvent("vehicle_found", trace.WithAttributes(
			attribute.Int("floor", loc.Floor),
		))
		labels = append(labels,
			attribute.String("status", "found"),
			attribute.Int("floor", loc.Floor),
		)
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return loc, err
}
