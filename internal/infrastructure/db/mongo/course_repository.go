package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courseify/course-api/internal/core/domain"
)

const courseCollection = "courses"

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(courseCollection)}
}

type mongoCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	ImageLink   string             `bson:"imageLink"`
	Published   bool               `bson:"published"`
}

func toDomain(mc mongoCourse) *domain.Course {
	return &domain.Course{
		ID:          mc.ID.Hex(),
		Title:       mc.Title,
		Description: mc.Description,
		Price:       mc.Price,
		ImageLink:   mc.ImageLink,
		Published:   mc.Published,
	}
}

// Create inserts a new course document and returns its ObjectID hex.
func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		ImageLink:   course.ImageLink,
		Published:   course.Published,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert course: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update replaces the course's fields. A malformed id is reported as not
// found rather than as a driver error, matching how the routes treat ids.
func (r *CourseRepository) Update(ctx context.Context, id string, course *domain.Course) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       course.Title,
		"description": course.Description,
		"price":       course.Price,
		"imageLink":   course.ImageLink,
		"published":   course.Published,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCourse
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return toDomain(mc), nil
}

func (r *CourseRepository) List(ctx context.Context, publishedOnly bool) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeCourses(ctx, cursor)
}

// FindByIDs fetches the courses named by ids with a single $in query. Ids
// that do not parse or do not match a document are skipped.
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*domain.Course{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find courses by id: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeCourses(ctx, cursor)
}

func decodeCourses(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Course, error) {
	courses := []*domain.Course{}
	for cursor.Next(ctx) {
		var mc mongoCourse
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, toDomain(mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}
