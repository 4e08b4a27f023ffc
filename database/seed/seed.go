// Package seed loads the demo dataset the dashboard starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"raisedesk/database/repository"
	"raisedesk/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type investorRecord struct {
	ID                   string    `yaml:"id"`
	Name                 string    `yaml:"name"`
	Email                string    `yaml:"email"`
	Phone                string    `yaml:"phone"`
	Company              string    `yaml:"company"`
	Title                string    `yaml:"title"`
	InvestmentSize       sizeRange `yaml:"investmentSize"`
	PreferredSectors     []string  `yaml:"preferredSectors"`
	PreferredStages      []string  `yaml:"preferredStages"`
	PreferredGeographies []string  `yaml:"preferredGeographies"`
	Status               string    `yaml:"status"`
	Tags                 []string  `yaml:"tags"`
	Notes                string    `yaml:"notes"`
}

type sizeRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

type clientRecord struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Company       string   `yaml:"company"`
	Email         string   `yaml:"email"`
	Sector        string   `yaml:"sector"`
	Stage         string   `yaml:"stage"`
	Geography     string   `yaml:"geography"`
	FundingNeeded int64    `yaml:"fundingNeeded"`
	Description   string   `yaml:"description"`
	Status        string   `yaml:"status"`
	Tags          []string `yaml:"tags"`
}

// Meeting and task times are offsets from load time so the demo never goes stale.
type meetingRecord struct {
	ID              string        `yaml:"id"`
	Title           string        `yaml:"title"`
	InvestorID      string        `yaml:"investorId"`
	ClientID        string        `yaml:"clientId"`
	StartsIn        time.Duration `yaml:"startsIn"`
	DurationMinutes int           `yaml:"durationMinutes"`
	Location        string        `yaml:"location"`
}

type taskRecord struct {
	ID         string        `yaml:"id"`
	Title      string        `yaml:"title"`
	Column     string        `yaml:"column"`
	Priority   string        `yaml:"priority"`
	Assignee   string        `yaml:"assignee"`
	DueIn      time.Duration `yaml:"dueIn"`
	InvestorID string        `yaml:"investorId"`
	ClientID   string        `yaml:"clientId"`
}

type file struct {
	Investors []investorRecord `yaml:"investors"`
	Clients   []clientRecord   `yaml:"clients"`
	Meetings  []meetingRecord  `yaml:"meetings"`
	Tasks     []taskRecord     `yaml:"tasks"`
}

// Dataset is the decoded seed, ready to be written to a store.
type Dataset struct {
	Investors []models.Investor
	Clients   []models.Client
	Meetings  []models.Meeting
	Tasks     []models.Task
}

// Load decodes the embedded dataset relative to now.
func Load(now time.Time) (*Dataset, error) {
	return Parse(seedYAML, now)
}

func Parse(data []byte, now time.Time) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	now = now.UTC()
	ds := &Dataset{
		Investors: make([]models.Investor, 0, len(f.Investors)),
		Clients:   make([]models.Client, 0, len(f.Clients)),
		Meetings:  make([]models.Meeting, 0, len(f.Meetings)),
		Tasks:     make([]models.Task, 0, len(f.Tasks)),
	}

	for _, r := range f.Investors {
		ds.Investors = append(ds.Investors, models.Investor{
			ID:                   r.ID,
			Name:                 r.Name,
			Email:                r.Email,
			Phone:                optional(r.Phone),
			Company:              r.Company,
			Title:                r.Title,
			InvestmentSize:       models.InvestmentSize{Min: r.InvestmentSize.Min, Max: r.InvestmentSize.Max},
			PreferredSectors:     r.PreferredSectors,
			PreferredStages:      r.PreferredStages,
			PreferredGeographies: r.PreferredGeographies,
			Status:               r.Status,
			Tags:                 r.Tags,
			Notes:                optional(r.Notes),
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}
	for _, r := range f.Clients {
		ds.Clients = append(ds.Clients, models.Client{
			ID:            r.ID,
			Name:          r.Name,
			Company:       r.Company,
			Email:         r.Email,
			Sector:        r.Sector,
			Stage:         r.Stage,
			Geography:     r.Geography,
			FundingNeeded: r.FundingNeeded,
			Description:   r.Description,
			Status:        r.Status,
			Tags:          r.Tags,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	for _, r := range f.Meetings {
		ds.Meetings = append(ds.Meetings, models.Meeting{
			ID:              r.ID,
			Title:           r.Title,
			InvestorID:      r.InvestorID,
			ClientID:        optional(r.ClientID),
			StartsAt:        now.Add(r.StartsIn).Truncate(time.Hour),
			DurationMinutes: r.DurationMinutes,
			Location:        r.Location,
			Status:          models.MeetingStatusScheduled,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	positions := map[string]int{}
	for _, r := range f.Tasks {
		if !models.IsColumn(r.Column) {
			return nil, fmt.Errorf("seed task %s: unknown column %q", r.ID, r.Column)
		}
		t := models.Task{
			ID:         r.ID,
			Title:      r.Title,
			Column:     r.Column,
			Position:   positions[r.Column],
			Priority:   r.Priority,
			Assignee:   r.Assignee,
			InvestorID: optional(r.InvestorID),
			ClientID:   optional(r.ClientID),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		positions[r.Column]++
		if r.DueIn > 0 {
			due := now.Add(r.DueIn).Truncate(time.Hour)
			t.DueAt = &due
		}
		ds.Tasks = append(ds.Tasks, t)
	}
	return ds, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Invalidator drops cached match results; the match cache satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Apply replaces investors and clients wholesale and inserts meetings and tasks.
func Apply(ctx context.Context, store *repository.Store, ds *Dataset, cache Invalidator, logger *zap.Logger) error {
	if err := store.Investors.ReplaceAll(ctx, ds.Investors); err != nil {
		return fmt.Errorf("failed to seed investors: %w", err)
	}
	if err := store.Clients.ReplaceAll(ctx, ds.Clients); err != nil {
		return fmt.Errorf("failed to seed clients: %w", err)
	}
	if cache != nil {
		if err := cache.Invalidate(ctx); err != nil {
			return fmt.Errorf("failed to invalidate match cache: %w", err)
		}
	}
	for i := range ds.Meetings {
		if err := store.Meetings.Create(ctx, &ds.Meetings[i]); err != nil {
			logger.Warn("skipping seed meeting", zap.String("id", ds.Meetings[i].ID), zap.Error(err))
		}
	}
	for i := range ds.Tasks {
		if err := store.Tasks.Create(ctx, &ds.Tasks[i]); err != nil {
			logger.Warn("skipping seed task", zap.String("id", ds.Tasks[i].ID), zap.Error(err))
		}
	}
	logger.Info("seed data loaded",
		zap.Int("investors", len(ds.Investors)),
		zap.Int("clients", len(ds.Clients)),
		zap.Int("meetings", len(ds.Meetings)),
		zap.Int("tasks", len(ds.Tasks)),
	)
	return nil
}
