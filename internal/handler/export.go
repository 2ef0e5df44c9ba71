package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/internal/middleware"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

const exportFilename = "rides.csv"

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"ride_id", "date", "hour", "distance", "distance_unit",
	"ride_name", "start_location", "end_location", "notes", "created_at",
	"temperature", "conditions", "wind_speed", "wind_direction", "humidity", "pressure",
}

var exportRidesErrors = errorResponses[gen.ExportRidesResponseObject]{
	http.StatusBadRequest:   func(b gen.ErrorResponse) gen.ExportRidesResponseObject { return gen.ExportRides400JSONResponse(b) },
	http.StatusUnauthorized: func(b gen.ErrorResponse) gen.ExportRidesResponseObject { return gen.ExportRides401JSONResponse(b) },
}

// ExportRides handles GET /api/rides/export.
// It returns every active ride of the user as a flat table.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportRides(ctx context.Context, req gen.ExportRidesRequestObject) (gen.ExportRidesResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Json && format != gen.Csv {
		return gen.ExportRides400JSONResponse(errorBody(badRequest("format must be csv or json."))), nil
	}
	userID, _ := middleware.UserFromContext(ctx)

	return result.MatchContext(ctx, s.rides.Export(ctx, userID),
		func(_ context.Context, rows []domain.ExportRow) (gen.ExportRidesResponseObject, error) {
			if format == gen.Csv {
				return buildCSVResponse(rows)
			}
			return buildJSONResponse(rows)
		},
		exportRidesErrors.respond,
	)
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) (gen.ExportRides200JSONResponse, error) {
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		row, err := domainRowToGenRow(r)
		if err != nil {
			return gen.ExportRides200JSONResponse{}, err
		}
		out = append(out, row)
	}
	return gen.ExportRides200JSONResponse{
		Body:    out,
		Headers: gen.ExportRides200ResponseHeaders{ContentDisposition: "inline"},
	}, nil
}

// buildCSVResponse encodes domain rows as CSV and wraps them in the streaming
// response type, served as an attachment.
func buildCSVResponse(rows []domain.ExportRow) (gen.ExportRides200TextcsvResponse, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return gen.ExportRides200TextcsvResponse{}, err
	}
	for _, r := range rows {
		if err := w.Write(domainRowToCSVRecord(r)); err != nil {
			return gen.ExportRides200TextcsvResponse{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return gen.ExportRides200TextcsvResponse{}, err
	}

	return gen.ExportRides200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
		Headers: gen.ExportRides200ResponseHeaders{
			ContentDisposition: `attachment; filename="` + exportFilename + `"`,
		},
	}, nil
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow.
// Empty optional columns become nil pointers and are omitted.
func domainRowToGenRow(r domain.ExportRow) (gen.ExportRow, error) {
	rideID, err := uuid.Parse(r.RideID)
	if err != nil {
		return gen.ExportRow{}, fmt.Errorf("export row ride id %q: %w", r.RideID, err)
	}
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return gen.ExportRow{}, fmt.Errorf("export row %s date %q: %w", r.RideID, r.Date, err)
	}
	return gen.ExportRow{
		RideId:        rideID,
		Date:          openapi_types.Date{Time: date},
		Hour:          r.Hour,
		Distance:      r.Distance,
		DistanceUnit:  r.DistanceUnit,
		RideName:      r.RideName,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Notes:         optional(r.Notes),
		CreatedAt:     r.CreatedAt.UTC(),
		Temperature:   optional(r.Temperature),
		Conditions:    optional(r.Conditions),
		WindSpeed:     optional(r.WindSpeed),
		WindDirection: optional(r.WindDirection),
		Humidity:      optional(r.Humidity),
		Pressure:      optional(r.Pressure),
	}, nil
}

// domainRowToCSVRecord encodes a domain.ExportRow in csvHeaders order.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.RideID,
		r.Date,
		strconv.Itoa(r.Hour),
		r.Distance,
		r.DistanceUnit,
		r.RideName,
		r.StartLocation,
		r.EndLocation,
		r.Notes,
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.Temperature,
		r.Conditions,
		r.WindSpeed,
		r.WindDirection,
		r.Humidity,
		r.Pressure,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
