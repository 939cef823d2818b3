package applications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	DB "Backend-AIInterviewer/src/database"
	"Backend-AIInterviewer/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrFormUntracked means no document exists for the formId.
	ErrFormUntracked = errors.New("application form not tracked")
	// ErrStoreUnavailable wraps driver-level failures; the sync engine skips
	// the affected form for the current cycle and retries next tick.
	ErrStoreUnavailable = errors.New("application store unavailable")
)

// ParseFormID extracts the form id from an editor URL of the shape
// https://docs.google.com/forms/d/<id>/edit.
func ParseFormID(formURL string) (string, error) {
	_, after, found := strings.Cut(formURL, "/d/")
	if !found {
		return "", errors.New("formUrl does not contain /d/ segment")
	}
	id, _, _ := strings.Cut(after, "/")
	if id == "" {
		return "", errors.New("formUrl has empty form id")
	}
	return id, nil
}

// Approve stores a generated application as tracked so the sync engine starts
// polling it. The formId is derived from the editor URL.
func Approve(ctx context.Context, form *models.ApplicationForm) (*models.ApplicationForm, error) {
	if form.ApplicationName == "" {
		return nil, errors.New("applicationName is required")
	}

	formID, err := ParseFormID(form.FormURL)
	if err != nil {
		return nil, fmt.Errorf("invalid formUrl: %w", err)
	}

	form.ID = primitive.NewObjectID()
	form.FormID = formID
	form.CreatedAt = time.Now()
	if form.Responses == nil {
		form.Responses = map[string]models.ResponseRecord{}
	}

	if _, err := DB.ApplicationFormCollection.InsertOne(ctx, form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Printf("✅ [applications] tracked form approved: name=%s formId=%s", form.ApplicationName, form.FormID)
	return form, nil
}

// GetByFormID loads the full record for one tracked form.
func GetByFormID(ctx context.Context, formID string) (*models.ApplicationForm, error) {
	var form models.ApplicationForm
	err := DB.ApplicationFormCollection.FindOne(ctx, bson.M{"formId": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormUntracked
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &form, nil
}

// GetByID loads a tracked form by its document id.
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.ApplicationForm, error) {
	var form models.ApplicationForm
	err := DB.ApplicationFormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormUntracked
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &form, nil
}

// List returns every tracked form, newest first.
func List(ctx context.Context) ([]models.ApplicationForm, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.ApplicationFormCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var forms []models.ApplicationForm
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return forms, nil
}

// MergeResponses atomically replaces the full responses map for one form.
// A single write per form per sync cycle keeps the stored record consistent:
// either the whole merged map lands or nothing does.
func MergeResponses(ctx context.Context, formID string, responses map[string]models.ResponseRecord) error {
	res, err := DB.ApplicationFormCollection.UpdateOne(ctx,
		bson.M{"formId": formID},
		bson.M{"$set": bson.M{"responses": responses}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return ErrFormUntracked
	}
	return nil
}

// Delete untracks an application form.
func Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.ApplicationFormCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return ErrFormUntracked
	}
	return nil
}
