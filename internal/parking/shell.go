package parking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell is the line-oriented command interface over the parking garage.
// It reads the garage dimensions from stdin before entering the command
// loop; bad commands print a usage line and never reach the allocator.
type Shell struct {
	parkingLot *InstrumentedParkingLot
	scanner    *bufio.Scanner
	telemetry  *TelemetryProvider
}

func NewShell(telemetry *TelemetryProvider) *Shell {
	return &Shell{
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	if !s.setupGarage(ctx) {
		span.AddEvent("setup_aborted")
		return
	}

	fmt.Println("Parking Garage System")
	fmt.Println("Commands:")
	fmt.Println("  park_vehicle <license_plate> <vehicle_type>")
	fmt.Println("  remove_vehicle <license_plate>")
	fmt.Println("  available_spots")
	fmt.Println("  is_full")
	fmt.Println("  find_vehicle <license_plate>")
	fmt.Println("  exit")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		done := s.processCommand(cmdCtx, input)
		cmdSpan.End()

		if done {
			break
		}
	}

	span.AddEvent("shell_ended")
}

// setupGarage reads floor count and spots per floor as two integers and
// builds the garage. Returns false if stdin ends or setup fails.
func (s *Shell) setupGarage(ctx context.Context) bool {
	tracer := s.telemetry.Tracer()
	_, span := tracer.Start(ctx, "shell.setup_garage")
	defer span.End()

	numFloors, ok := s.readInt("Enter the number of floors: ")
	if !ok {
		return false
	}
	spotsPerFloor, ok := s.readInt("Enter the number of spots per floor: ")
	if !ok {
		return false
	}

	span.SetAttributes(
		attribute.Int("garage.floors", numFloors),
		attribute.Int("garage.spots_per_floor", spotsPerFloor),
	)

	parkingLot, err := NewInstrumentedParkingLot(numFloors, spotsPerFloor, s.telemetry)
	if err != nil {
		span.RecordError(err)
		fmt.Printf("Error creating parking garage: %s\n", err.Error())
		return false
	}

	s.parkingLot = parkingLot
	span.AddEvent("garage_created")
	return true
}

func (s *Shell) readInt(prompt string) (int, bool) {
	for {
		fmt.Print(prompt)
		if !s.scanner.Scan() {
			return 0, false
		}
		value, err := strconv.Atoi(strings.TrimSpace(s.scanner.Text()))
		if err != nil || value <= 0 {
			fmt.Println("Please enter a positive integer")
			continue
		}
		return value, true
	}
}

// processCommand dispatches a single command line and reports whether
// the shell should exit.
func (s *Shell) processCommand(ctx context.Context, input string) bool {
	tracer := s.telemetry.Tracer()
	_, span := tracer.Start(ctx, "shell.parse_command")
	defer span.End()

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false
	}

	command := parts[0]
	span.SetAttributes(attribute.String("command.name", command))

	switch command {
	case "park_vehicle":
		s.handlePark(ctx, parts)
	case "remove_vehicle":
		s.handleRemove(ctx, parts)
	case "available_spots":
		s.handleAvailableSpots(ctx)
	case "is_full":
		s.handleIsFull(ctx)
	case "find_vehicle":
		s.handleFindVehicle(ctx, parts)
	case "exit":
		return true
	default:
		span.AddEvent("unknown_command", trace.WithAttributes(
			attribute.String("unknown_command", command),
		))
		fmt.Printf("Unknown command: %s\n", command)
	}
	return false
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.park_vehicle")
	defer span.End()

	if len(parts) != 3 {
		span.AddEvent("invalid_arguments")
		fmt.Println("Usage: park_vehicle <license_plate> <vehicle_type>")
		return
	}

	licensePlate := parts[1]

	vehicleType, err := ParseVehicleType(parts[2])
	if err != nil {
		span.RecordError(err)
		fmt.Println("Unknown vehicle type. Types: Bike, Car, Truck")
		return
	}

	span.SetAttributes(
		attribute.String("vehicle.license_plate", licensePlate),
		attribute.String("vehicle.type", vehicleType.String()),
	)

	loc, err := s.parkingLot.Park(ctx, NewVehicle(licensePlate, vehicleType))
	switch {
	case errors.Is(err, ErrAlreadyParked):
		span.AddEvent("already_parked")
		fmt.Printf("Vehicle %s is already parked.\n", licensePlate)
	case errors.Is(err, ErrLotFull):
		span.AddEvent("garage_full")
		fmt.Printf("Parking garage full or no suitable spot available for %s\n", licensePlate)
	case err != nil:
		fmt.Printf("Error: %s\n", err.Error())
	default:
		span.AddEvent("parking_successful", trace.WithAttributes(
			attribute.Int("floor", loc.Floor),
		))
		fmt.Printf("Parked %s on floor %d at spot(s): %s\n",
			licensePlate, loc.Floor, formatSpots(loc.Spots))
	}
}

func (s *Shell) handleRemove(ctx context.Context, parts []string) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.remove_vehicle")
	defer span.End()

	if len(parts) != 2 {
		span.AddEvent("invalid_arguments")
		fmt.Println("Usage: remove_vehicle <license_plate>")
		return
	}

	licensePlate := parts[1]
	span.SetAttributes(attribute.String("vehicle.license_plate", licensePlate))

	floor, err := s.parkingLot.Release(ctx, licensePlate)
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		span.AddEvent("vehicle_not_found")
		fmt.Printf("Vehicle %s not found.\n", licensePlate)
	case err != nil:
		fmt.Printf("Error: %s\n", err.Error())
	default:
		span.AddEvent("remove_successful")
		fmt.Printf("Vehicle %s removed from floor %d\n", licensePlate, floor)
	}
}

func (s *Shell) handleAvailableSpots(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.available_spots")
	defer span.End()

	available := s.parkingLot.AvailablePerFloor(ctx)
	for floor, count := range available {
		fmt.Printf("Floor %d: %d spots available.\n", floor, count)
	}
}

func (s *Shell) handleIsFull(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.is_full")
	defer span.End()

	if s.parkingLot.IsFull(ctx) {
		fmt.Println("Parking garage is full.")
	} else {
		fmt.Println("Parking garage has available spots.")
	}
}

func (s *Shell) handleFindVehicle(ctx context.Context, parts []string) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.find_vehicle")
	defer span.End()

	if len(parts) != 2 {
		span.AddEvent("invalid_arguments")
		fmt.Println("Usage: find_vehicle <license_plate>")
		return
	}

	licensePlate := parts[1]
	span.SetAttributes(attribute.String("vehicle.license_plate", licensePlate))

	loc, err := s.parkingLot.Locate(ctx, licensePlate)
	if err != nil {
		span.AddEvent("vehicle_not_found")
		fmt.Printf("Vehicle %s not found.\n", licensePlate)
		return
	}

	span.AddEvent("vehicle_found", trace.WithAttributes(
		attribute.Int("floor", loc.Floor),
	))
	fmt.Printf("Vehicle %s is parked on floor %d at spot(s): %s\n",
		licensePlate, loc.Floor, formatSpots(loc.Spots))
}

func formatSpots(spots []int) string {
	parts := make([]string, len(spots))
	for i, n := range spots {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
