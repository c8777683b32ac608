package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/navicula/navicula/internal/core/domain"
)

const settingsCollection = "user_app_settings"

// SettingsRepository stores one document per (user, app) pair. It is the
// backend for deployments whose settings volume outgrows the YAML file;
// both backends honour the same last-writer-wins contract.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserIdentifier string             `bson:"user_identifier"`
	AppID          string             `bson:"app_id"`
	Settings       map[string]any     `bson:"settings"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *SettingsRepository) LoadUser(ctx context.Context, userID string) (domain.UserAppSettings, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_identifier": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: find settings: %v", domain.ErrSettingsUnavailable, err)
	}
	defer cur.Close(ctx)

	out := domain.UserAppSettings{}
	for cur.Next(ctx) {
		var doc settingsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode settings: %v", domain.ErrSettingsUnavailable, err)
		}
		if len(doc.Settings) > 0 {
			out[doc.AppID] = domain.SettingsBag(doc.Settings)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate settings: %v", domain.ErrSettingsUnavailable, err)
	}
	return out, nil
}

// ReplaceUser swaps out all of userID's documents. Delete and insert are
// two operations, not a transaction: the contract is last-writer-wins, same
// as the file backend.
func (r *SettingsRepository) ReplaceUser(ctx context.Context, userID string, settings domain.UserAppSettings) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_identifier": userID}); err != nil {
		return fmt.Errorf("%w: delete settings: %v", domain.ErrSettingsUnavailable, err)
	}
	if len(settings) == 0 {
		return nil
	}

	now := time.Now().Unix()
	docs := make([]any, 0, len(settings))
	for appID, bag := range settings {
		docs = append(docs, settingsDoc{
			UserIdentifier: userID,
			AppID:          appID,
			Settings:       bag,
			UpdatedAt:      now,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: insert settings: %v", domain.ErrSettingsUnavailable, err)
	}
	return nil
}
