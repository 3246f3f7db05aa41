package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"parking-garage/internal/parking"
)

func getServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "parking-garage-service"
}

// Handler serves the HTTP surface over the allocator. The garage has
// fixed dimensions for the process lifetime, so the allocator is wired
// in at construction; its own mutex serializes all access.
type Handler struct {
	parkingLot *parking.InstrumentedParkingLot
}

func NewHandler(parkingLot *parking.InstrumentedParkingLot) *Handler {
	return &Handler{parkingLot: parkingLot}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": getServiceName(),
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParkVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.LicensePlate == "" {
		WriteError(ctx, w, http.StatusBadRequest, "License plate is required")
		return
	}

	vehicleType, err := parking.ParseVehicleType(req.VehicleType)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Vehicle type must be one of: Bike, Car, Truck")
		return
	}

	loc, err := h.parkingLot.Park(ctx, parking.NewVehicle(req.LicensePlate, vehicleType))
	switch {
	case errors.Is(err, parking.ErrAlreadyParked):
		WriteError(ctx, w, http.StatusConflict, "Vehicle is already parked")
		return
	case errors.Is(err, parking.ErrLotFull):
		WriteError(ctx, w, http.StatusConflict, "No suitable spot available")
		return
	case err != nil:
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked successfully", ParkVehicleResponse{
		LicensePlate: req.LicensePlate,
		VehicleType:  vehicleType.String(),
		Floor:        loc.Floor,
		Spots:        loc.Spots,
	})
}

func (h *Handler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RemoveVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.LicensePlate == "" {
		WriteError(ctx, w, http.StatusBadRequest, "License plate is required")
		return
	}

	floor, err := h.parkingLot.Release(ctx, req.LicensePlate)
	switch {
	case errors.Is(err, parking.ErrVehicleNotFound):
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	case err != nil:
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle removed successfully", map[string]any{
		"license_plate": req.LicensePlate,
		"floor":         floor,
	})
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	available := h.parkingLot.AvailablePerFloor(ctx)

	floors := make([]FloorAvailability, len(available))
	full := true
	for i, count := range available {
		floors[i] = FloorAvailability{Floor: i, AvailableSpots: count}
		if count > 0 {
			full = false
		}
	}

	WriteSuccess(ctx, w, "Availability retrieved successfully", AvailabilityResponse{
		Floors: floors,
		Full:   full,
	})
}

func (h *Handler) FindVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	licensePlate := chi.URLParam(r, "licensePlate")
	if licensePlate == "" {
		WriteError(ctx, w, http.StatusBadRequest, "License plate is required")
		return
	}

	loc, err := h.parkingLot.Locate(ctx, licensePlate)
	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	WriteSuccess(ctx, w, "Vehicle found", FindVehicleResponse{
		LicensePlate: licensePlate,
		Floor:        loc.Floor,
		Spots:        loc.Spots,
	})
}
