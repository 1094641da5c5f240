package announcement

import "context"

type AnnouncementService interface {
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	Create(ctx context.Context, req *AnnouncementRequest) (*AnnouncementResponse, error)
	Update(ctx context.Context, req *AnnouncementRequest) (*AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
