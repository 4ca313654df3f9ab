// Package seed creates the default data the application needs on first run.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/auth"
)

// DefaultDirectionEmail is the bootstrap admin account; change its password
// after first login
const DefaultDirectionEmail = "direction@school.ma"

var defaultTracks = map[string][]string{
	"ADIA": {"Python", "Machine Learning", "Statistiques"},
	"IL":   {"Java", "Genie Logiciel", "Bases de Donnees"},
	"IISE": {"Reseaux", "Securite", "Systemes Embarques"},
}

// CreateDefaultData seeds the direction account, the study tracks with one
// group each, and their modules. Every step is idempotent so the seed can
// run on each startup.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	if err := seedDirectionAccount(ctx, pool, lgr); err != nil {
		return err
	}
	if err := seedOrgStructure(ctx, pool, lgr); err != nil {
		return err
	}
	if err := seedDemoAccounts(ctx, pool, lgr); err != nil {
		return err
	}
	return nil
}

func seedDirectionAccount(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, DefaultDirectionEmail,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check direction account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role)
		VALUES ($1, $2, 'Admin', 'Direction', $3)
	`, DefaultDirectionEmail, hash, models.RoleDirection)
	if err != nil {
		return fmt.Errorf("failed to create direction account: %w", err)
	}

	lgr.Info().Str("email", DefaultDirectionEmail).Msg("Default direction account created")
	return nil
}

func seedOrgStructure(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	for trackName, moduleNames := range defaultTracks {
		var trackID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO tracks (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = tracks.name
			RETURNING id
		`, trackName).Scan(&trackID)
		if err != nil {
			return fmt.Errorf("failed to seed track %s: %w", trackName, err)
		}

		groupName := trackName + "-G1"
		_, err = pool.Exec(ctx, `
			INSERT INTO groups (name, track_id) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, groupName, trackID)
		if err != nil {
			return fmt.Errorf("failed to seed group %s: %w", groupName, err)
		}

		for _, moduleName := range moduleNames {
			_, err = pool.Exec(ctx, `
				INSERT INTO modules (name, track_id)
				SELECT $1, $2
				WHERE NOT EXISTS (
					SELECT 1 FROM modules WHERE name = $1 AND track_id = $2
				)
			`, moduleName, trackID)
			if err != nil {
				return fmt.Errorf("failed to seed module %s: %w", moduleName, err)
			}
		}
	}

	lgr.Info().Int("tracks", len(defaultTracks)).Msg("Org structure seeded")
	return nil
}

// seedDemoAccounts creates one demo instructor and two demo students in the
// ADIA group so a fresh install has something to click through
func seedDemoAccounts(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var groupID int64
	err := pool.QueryRow(ctx, `SELECT id FROM groups WHERE name = 'ADIA-G1'`).Scan(&groupID)
	if err != nil {
		return fmt.Errorf("failed to find demo group: %w", err)
	}

	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	instructorID, created, err := seedUser(ctx, pool,
		"y.alaoui@school.ma", hash, "Youssef", "Alaoui", models.RoleInstructor)
	if err != nil {
		return err
	}
	if created {
		_, err = pool.Exec(ctx,
			`INSERT INTO instructors (user_id, matricule) VALUES ($1, 'FORM0001')`, instructorID)
		if err != nil {
			return fmt.Errorf("failed to seed demo instructor: %w", err)
		}
	}

	demoStudents := []struct {
		email, first, last, cne string
	}{
		{"s.idrissi@school.ma", "Salma", "Idrissi", "D130000001"},
		{"m.tazi@school.ma", "Mehdi", "Tazi", "D130000002"},
	}
	for _, ds := range demoStudents {
		userID, created, err := seedUser(ctx, pool, ds.email, hash, ds.first, ds.last, models.RoleStudent)
		if err != nil {
			return err
		}
		if created {
			_, err = pool.Exec(ctx,
				`INSERT INTO students (user_id, cne, group_id) VALUES ($1, $2, $3)`,
				userID, ds.cne, groupID)
			if err != nil {
				return fmt.Errorf("failed to seed demo student %s: %w", ds.email, err)
			}
		}
	}

	lgr.Info().Msg("Demo accounts seeded")
	return nil
}

// seedUser inserts a user if the email is free, reporting whether a row was
// created
func seedUser(ctx context.Context, pool *pgxpool.Pool, email, hash, first, last string, role models.RoleType) (int64, bool, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, false, nil
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, email, hash, first, last, role).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("failed to seed user %s: %w", email, err)
	}
	return id, true, nil
}
