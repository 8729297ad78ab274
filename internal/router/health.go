package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports the state of one dependency. Details may be nil.
type HealthCheck func(ctx context.Context) (details map[string]any, err error)

type componentHealth struct {
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentHealth `json:"components"`
}

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

func healthHandler(checks map[string]HealthCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		res := healthResponse{Status: statusUp, Components: map[string]componentHealth{}}
		for name, check := range checks {
			details, err := check(ctx)
			component := componentHealth{Status: statusUp, Details: details}
			if err != nil {
				component.Status = statusDown
				component.Error = err.Error()
				res.Status = statusDown
			}
			res.Components[name] = component
		}

		if res.Status == statusDown {
			return c.Status(fiber.StatusServiceUnavailable).JSON(res)
		}
		return c.JSON(res)
	}
}
