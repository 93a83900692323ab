package grpc

import (
	"context"
	"errors"
	"math"

	"category_service/internal/delivery"
	"category_service/internal/domain"
	"category_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	log             *logrus.Logger
}

func NewCategoryHandler(cuc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: cuc,
		log:             logger,
	}
}

func categoryToStruct(cat *domain.Category) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"id":   cat.ID,
		"name": cat.Name,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode category: %v", err)
	}
	return s, nil
}

// structToCategory rejects ids that are not whole numbers within int range;
// an absent id reads as zero.
func structToCategory(s *structpb.Struct) (domain.Category, error) {
	fields := s.GetFields()
	cat := domain.Category{Name: fields["name"].GetStringValue()}

	v, ok := fields["id"]
	if !ok {
		return cat, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || math.Trunc(n.NumberValue) != n.NumberValue ||
		n.NumberValue < math.MinInt || n.NumberValue >= math.MaxInt {
		return domain.Category{}, status.Error(codes.InvalidArgument, delivery.MsgInvalidCategoryID)
	}
	cat.ID = int(n.NumberValue)
	return cat, nil
}

func (h *CategoryHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Info("gRPC Handler: Received ListCategories request")
	categories, err := h.categoryUseCase.ListCategories(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(categories))}
	for i := range categories {
		s, err := categoryToStruct(&categories[i])
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return list, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := int(req.GetValue())
	h.log.Infof("gRPC Handler: Received GetCategory request: ID=%d", id)

	cat, err := h.categoryUseCase.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, status.Error(codes.NotFound, delivery.NotFoundMessage(id))
		}
		h.log.Errorf("gRPC Handler: GetCategory use case error: %v", err)
		return nil, status.Error(codes.FailedPrecondition, delivery.RetrieveFailedMessage(id))
	}
	return categoryToStruct(cat)
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	cat, err := structToCategory(req)
	if err != nil {
		return nil, err
	}
	h.log.Infof("gRPC Handler: Received CreateCategory request: Name=%s", cat.Name)
	if err := cat.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, delivery.MsgInvalidCategory)
	}

	if err := h.categoryUseCase.SaveCategory(ctx, &cat); err != nil {
		h.log.Errorf("gRPC Handler: CreateCategory use case error: %v", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	h.log.Infof("gRPC Handler: Category created successfully: ID=%d", cat.ID)
	return categoryToStruct(&cat)
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	updates, err := structToCategory(req)
	if err != nil {
		return nil, err
	}
	id := updates.ID
	h.log.Infof("gRPC Handler: Received UpdateCategory request: ID=%d", id)

	existing, err := h.categoryUseCase.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, status.Error(codes.NotFound, delivery.UpdateNotFoundMessage(id))
		}
		h.log.Errorf("gRPC Handler: UpdateCategory lookup error: %v", err)
		return nil, status.Error(codes.FailedPrecondition, delivery.UpdateFailedMessage(id))
	}
	if err := updates.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, delivery.MsgInvalidCategory)
	}

	existing.Name = updates.Name
	if err := h.categoryUseCase.SaveCategory(ctx, existing); err != nil {
		h.log.Errorf("gRPC Handler: UpdateCategory use case error: %v", err)
		return nil, status.Error(codes.FailedPrecondition, delivery.UpdateFailedMessage(id))
	}
	return categoryToStruct(existing)
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.StringValue, error) {
	id := int(req.GetValue())
	h.log.Infof("gRPC Handler: Received DeleteCategory request: ID=%d", id)

	if _, err := h.categoryUseCase.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, status.Error(codes.NotFound, delivery.NotFoundMessage(id))
		}
		h.log.Errorf("gRPC Handler: DeleteCategory lookup error: %v", err)
		return nil, status.Error(codes.FailedPrecondition, delivery.DeleteFailedMessage(id))
	}

	if err := h.categoryUseCase.DeleteCategory(ctx, id); err != nil {
		h.log.Errorf("gRPC Handler: DeleteCategory use case error: %v", err)
		return nil, status.Error(codes.FailedPrecondition, delivery.DeleteFailedMessage(id))
	}
	return wrapperspb.String(delivery.DeletedMessage(id)), nil
}
