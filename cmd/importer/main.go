package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"delivery-zone-api/internal/config"
	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/repository"
	"delivery-zone-api/internal/zone"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the district CSV file to import (name,latitude,longitude)")
	replace := flag.Bool("replace", false, "Delete existing districts before importing")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	log.Info().Int("records", len(records)).Msg("parsed districts")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Connect to DB
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("cannot create tables")
	}

	if *replace {
		if _, err := conn.Exec(ctx, "TRUNCATE districts RESTART IDENTITY"); err != nil {
			log.Fatal().Err(err).Msg("cannot clear districts")
		}
	}

	if err := insertRecords(ctx, conn, records); err != nil {
		log.Fatal().Err(err).Msg("cannot insert districts")
	}

	if err := verifyImport(ctx, conn, len(records)); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int("records", len(records)).Msg("successfully imported districts")
}

func parseCSV(r io.Reader) ([]models.District, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.District
	seen := make(map[string]int)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least 3 columns", line, len(record))
		}

		name := strings.ToLower(strings.TrimSpace(record[0]))
		if name == "" {
			return nil, fmt.Errorf("line %d: empty district name", line)
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("line %d: district %q already defined on line %d", line, name, prev)
		}
		seen[name] = line

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		if err := zone.ValidatePoint(zone.GeoPoint{Lat: lat, Lng: lng}); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, models.District{Name: name, Latitude: lat, Longitude: lng})
	}

	return records, nil
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []models.District) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"districts"},
		[]string{"name", "latitude", "longitude"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.Name, r.Latitude, r.Longitude}, nil
		}),
	)
	return err
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM districts").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	return nil
}
