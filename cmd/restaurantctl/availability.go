package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	restaurantCache "github.com/m04kA/SMC-RestaurantService/internal/infra/cache/restaurant"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	restaurantsService "github.com/m04kA/SMC-RestaurantService/internal/service/restaurants"
	checkOrderAvailabilityUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/check_order_availability"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/txmanager"
)

func newAvailabilityCmd(open func() (*env, error)) *cobra.Command {
	var (
		restaurant string
		at         string
	)

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check whether a restaurant is open and accepts an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(restaurant)
			if err != nil {
				return fmt.Errorf("invalid --restaurant %q: %w", restaurant, err)
			}

			req := &checkOrderAvailabilityUC.Request{RestaurantID: id}
			if at != "" {
				orderAt, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q, expected RFC3339: %w", at, err)
				}
				req.OrderDateTime = &orderAt
			}

			e, err := open()
			if err != nil {
				return err
			}
			defer e.close()

			location, err := e.cfg.Ordering.Location()
			if err != nil {
				return err
			}

			useCase := checkOrderAvailabilityUC.NewUseCase(
				restaurantRepo.NewRepository(e.executor()),
				restaurantCache.NopCache{},
				(*metrics.Metrics)(nil),
				location,
				e.log,
			)

			resp, err := useCase.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "restaurant:     %s (%s)\n", resp.Name, resp.RestaurantID)
			fmt.Fprintf(out, "active:         %t\n", resp.IsActive)
			fmt.Fprintf(out, "order mode:     %s\n", resp.SupportedOrderMode)
			fmt.Fprintf(out, "open now:       %t\n", resp.IsOpen)
			if resp.CurrentPeriod != nil {
				fmt.Fprintf(out, "current period: %s\n", resp.CurrentPeriod.String())
			}
			fmt.Fprintf(out, "today:          %s\n", resp.OpeningHoursToday)
			fmt.Fprintf(out, "order at:       %s\n", resp.OrderDateTime.Format(time.RFC3339))
			fmt.Fprintf(out, "order possible: %t\n", resp.IsOrderPossible)
			return nil
		},
	}

	cmd.Flags().StringVar(&restaurant, "restaurant", "", "restaurant ID")
	cmd.Flags().StringVar(&at, "at", "", "order date and time in RFC3339, defaults to now")
	_ = cmd.MarkFlagRequired("restaurant")

	return cmd
}

func newOpeningHoursCmd(open func() (*env, error)) *cobra.Command {
	var restaurant string

	cmd := &cobra.Command{
		Use:   "opening-hours",
		Short: "Print weekly and today's opening hours of a restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(restaurant)
			if err != nil {
				return fmt.Errorf("invalid --restaurant %q: %w", restaurant, err)
			}

			e, err := open()
			if err != nil {
				return err
			}
			defer e.close()

			location, err := e.cfg.Ordering.Location()
			if err != nil {
				return err
			}

			executor := e.executor()
			service := restaurantsService.NewService(
				restaurantRepo.NewRepository(executor),
				restaurantCache.NopCache{},
				txmanager.NewTransactionManager(executor),
				location,
				e.log,
			)

			resp, err := service.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", resp.Name, resp.ID)
			if resp.OpeningHoursText == "" {
				fmt.Fprintln(out, "no regular opening hours")
			} else {
				fmt.Fprintln(out, resp.OpeningHoursText)
			}
			fmt.Fprintf(out, "\ntoday: %s\n", resp.OpeningHoursTodayText)
			return nil
		},
	}

	cmd.Flags().StringVar(&restaurant, "restaurant", "", "restaurant ID")
	_ = cmd.MarkFlagRequired("restaurant")

	return cmd
}
