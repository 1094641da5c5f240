package holiday

import "context"

type HolidayService interface {
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Create(ctx context.Context, req *HolidayRequest) (*HolidayResponse, error)
	Update(ctx context.Context, req *HolidayRequest) (*HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
