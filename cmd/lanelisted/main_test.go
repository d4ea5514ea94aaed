package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []string{"debug", "info", "warn", "error"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{"DEBUG", "Info", "WaRn", "ERROR"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestBuildRelay(t *testing.T) {
	t.Run("nil without smtp settings", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "smtp-host"},
				&cli.IntFlag{Name: "smtp-port", Value: 587},
				&cli.StringFlag{Name: "smtp-username"},
				&cli.StringFlag{Name: "smtp-password"},
				&cli.StringFlag{Name: "mail-from"},
				&cli.StringFlag{Name: "mail-to"},
			},
			Action: func(c *cli.Context) error {
				relay, err := buildRelay(c)
				require.NoError(t, err)
				assert.Nil(t, relay)
				return nil
			},
		}
		require.NoError(t, app.Run([]string{"test"}))
	})

	t.Run("relay with complete settings", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "smtp-host"},
				&cli.IntFlag{Name: "smtp-port", Value: 587},
				&cli.StringFlag{Name: "smtp-username"},
				&cli.StringFlag{Name: "smtp-password"},
				&cli.StringFlag{Name: "mail-from"},
				&cli.StringFlag{Name: "mail-to"},
			},
			Action: func(c *cli.Context) error {
				relay, err := buildRelay(c)
				require.NoError(t, err)
				assert.NotNil(t, relay)
				return nil
			},
		}
		require.NoError(t, app.Run([]string{"test",
			"--smtp-host", "smtp.example.com",
			"--mail-from", "noreply@example.com",
			"--mail-to", "inquiries@example.com",
		}))
	})
}
