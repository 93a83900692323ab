package grpc

import (
	"context"
	"fmt"

	"category_service/internal/domain"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls CategoryService over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, fullMethod("ListCategories"), &emptypb.Empty{}, out); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("unexpected list element %v", v)
		}
		cat, err := structToCategory(s)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("GetCategory"), wrapperspb.Int64(int64(id)), out); err != nil {
		return nil, err
	}
	cat, err := structToCategory(out)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return c.send(ctx, "CreateCategory", &domain.Category{Name: name})
}

func (c *Client) UpdateCategory(ctx context.Context, id int, name string) (*domain.Category, error) {
	return c.send(ctx, "UpdateCategory", &domain.Category{ID: id, Name: name})
}

func (c *Client) DeleteCategory(ctx context.Context, id int) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, fullMethod("DeleteCategory"), wrapperspb.Int64(int64(id)), out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *Client) send(ctx context.Context, method string, cat *domain.Category) (*domain.Category, error) {
	in, err := categoryToStruct(cat)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, err
	}
	result, err := structToCategory(out)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
