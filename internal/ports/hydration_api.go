package ports

import (
	"context"

	"github.com/emiliopalmerini/hydrate/internal/domain"
)

// HydrationAPI is the backend serving intake, goal, user and device data.
type HydrationAPI interface {
	GetLiquidIntake(ctx context.Context, req domain.LiquidIntakeRequest) (*domain.LiquidIntake, error)
	GetHydrationGoal(ctx context.Context, req domain.HydrationGoalRequest) (*domain.HydrationGoals, error)
	GetUserInfo(ctx context.Context) (*domain.UserInfo, error)
	GetDeviceInfo(ctx context.Context, req domain.DeviceInfoRequest) (*domain.DeviceInfo, error)
}
