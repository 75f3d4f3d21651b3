package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

type userService struct {
	userCollection     *mongo.Collection
	propertyCollection *mongo.Collection
}

func NewUserService(db *mongo.Database) UserService {
	return &userService{
		userCollection:     util.GetCollection(db, common.UserCollection),
		propertyCollection: util.GetCollection(db, common.PropertyCollection),
	}
}

// CreateUser inserts a new user record keyed by email. An email that is
// already present is reported back without a second insert.
func (s *userService) CreateUser(ctx context.Context, req models.UserRequest) (primitive.ObjectID, bool, error) {
	var existing models.User
	err := s.userCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return existing.Id, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return primitive.NilObjectID, false, err
	}

	now := time.Now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Photo:     req.Photo,
		Role:      req.Role,
		Status:    models.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.userCollection.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, false, err
	}

	return user.Id, true, nil
}

// GetUserRole projects only the role field; a user without one defaults
// to "user".
func (s *userService) GetUserRole(ctx context.Context, email string) (models.UserRole, error) {
	projection := options.FindOne().SetProjection(bson.M{"role": 1})

	var result struct {
		Role models.UserRole `bson:"role"`
	}
	err := s.userCollection.FindOne(ctx, bson.M{"email": email}, projection).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if result.Role == "" {
		return models.RoleUser, nil
	}

	return result.Role, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) GetUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.User, int64, error) {
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetCreatedAtSortBson(pagination.Sort))

	cursor, err := s.userCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	count, err := s.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// UpdateProfile patches the caller's own display fields and social links.
func (s *userService) UpdateProfile(ctx context.Context, email string, req models.UserProfileUpdateRequest) error {
	set := bson.M{"updated_at": time.Now()}
	if !common.IsEmptyString(req.Name) {
		set["name"] = req.Name
	}
	if !common.IsEmptyString(req.Photo) {
		set["photo"] = req.Photo
	}
	if req.Socials != (models.SocialLinks{}) {
		set["socials"] = req.Socials
	}

	result, err := s.userCollection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *userService) GetSocialLinks(ctx context.Context, email string) (models.SocialLinks, error) {
	projection := options.FindOne().SetProjection(bson.M{"socials": 1})

	var result struct {
		Socials models.SocialLinks `bson:"socials"`
	}
	err := s.userCollection.FindOne(ctx, bson.M{"email": email}, projection).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return models.SocialLinks{}, ErrNotFound
	}
	if err != nil {
		return models.SocialLinks{}, err
	}

	return result.Socials, nil
}

// SetUserRole is an unconditional id-based role update.
func (s *userService) SetUserRole(ctx context.Context, userID primitive.ObjectID, role models.UserRole) error {
	result, err := s.userCollection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// MarkFraudulent flags the user. It does not cascade; the companion
// DeleteAgentProperties removes the agent's listings in a separate call.
func (s *userService) MarkFraudulent(ctx context.Context, userID primitive.ObjectID) error {
	result, err := s.userCollection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"status": models.UserStatusFraud, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	result, err := s.userCollection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("no records deleted. make sure you're using the correct _id")
	}

	return nil
}

// DeleteAgentProperties removes every property owned by the given agent
// email and reports how many went away.
func (s *userService) DeleteAgentProperties(ctx context.Context, agentEmail string) (int64, error) {
	result, err := s.propertyCollection.DeleteMany(ctx, bson.M{"agent.email": agentEmail})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
