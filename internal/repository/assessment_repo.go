package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"caretier/internal/model"
)

// AssessmentRepo stores submitted assessments and their recommendations.
// Rows are write-once: a corrected submission creates a new assessment.
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	List(ctx context.Context, limit int64) ([]*model.Assessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.SubmittedAt.IsZero() {
		assessment.SubmittedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) List(ctx context.Context, limit int64) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}
