package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/migrations"
)

func newMigrateCmd(open func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open()
			if err != nil {
				return err
			}
			defer e.close()

			return migrations.Up(cmd.Context(), e.executor(), e.log)
		},
	}
}
