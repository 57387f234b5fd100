package repo

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"ConflictBot/model"
)

// ResultArchive persists completed assessment results. Live quiz
// sessions never touch it; only finished results are written, off the
// event path.
type ResultArchive interface {
	SaveResult(ctx context.Context, record model.StyleRecord) error
	ListResults(ctx context.Context, userID int64) ([]model.StyleRecord, error)
}

// FirebaseConnector stores results in the Firebase Realtime Database
// under results/<userID>.
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector.
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

// SaveResult appends one completed result to the user's history.
func (fc *FirebaseConnector) SaveResult(ctx context.Context, record model.StyleRecord) error {
	ref := fc.client.NewRef("results").Child(strconv.FormatInt(record.UserID, 10))
	if _, err := ref.Push(ctx, record); err != nil {
		return fmt.Errorf("error saving result: %w", err)
	}
	return nil
}

// ListResults returns the user's archived results, oldest first.
func (fc *FirebaseConnector) ListResults(ctx context.Context, userID int64) ([]model.StyleRecord, error) {
	ref := fc.client.NewRef("results").Child(strconv.FormatInt(userID, 10))
	var records map[string]model.StyleRecord
	if err := ref.Get(ctx, &records); err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}

	results := make([]model.StyleRecord, 0, len(records))
	for _, record := range records {
		results = append(results, record)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TakenAt.Before(results[j].TakenAt)
	})
	return results, nil
}
