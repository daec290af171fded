package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/staffomatic/staffomatic-go/clients/staffomatic"
	"github.com/staffomatic/staffomatic-go/common/logging"
	"github.com/staffomatic/staffomatic-go/schema"
)

type clientFactory func() (staffomatic.ClientInterface, error)

func main() {
	logger := log.StandardLogger()
	logger.SetFormatter(&log.JSONFormatter{})

	newClient := func() (staffomatic.ClientInterface, error) {
		return staffomatic.NewStaffomaticClientFromEnv(nil)
	}

	app := newApp(newClient, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func newApp(newClient clientFactory, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "staffomatic-users"
	app.Usage = "Find, validate and update staffomatic users"
	app.Version = staffomatic.Version
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log every request sent to the api",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}

	withClient := func(action func(context.Context, *cli.Context, staffomatic.ClientInterface) (interface{}, error)) cli.ActionFunc {
		return func(c *cli.Context) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(context.Background(), log.WithField("command", c.Command.Name))
			result, err := action(ctx, c, client)
			if err != nil {
				return err
			}
			return dump(out, result)
		}
	}

	app.Commands = []cli.Command{
		{
			Name:      "list",
			ShortName: "l",
			Usage:     "List every user, in the order they signed up",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "since",
					Usage: "Only list users with an id greater than this one",
				},
				cli.IntFlag{
					Name:  "per-page",
					Usage: "Number of users fetched per request",
				},
			},
			Action: withClient(listUsers),
		},
		{
			Name:      "get",
			ShortName: "g",
			Usage:     "Get a user by id or login, the authenticated user when none is given",
			ArgsUsage: "[ID]",
			Action:    withClient(getUser),
		},
		{
			Name:      "resource",
			Usage:     "Get a resource nested under a user",
			ArgsUsage: "USER RESOURCE",
			Action:    withClient(getUserResource),
		},
		{
			Name:      "update",
			ShortName: "u",
			Usage:     "Update the authenticated user",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "Full name"},
				cli.StringFlag{Name: "email", Usage: "Email address"},
				cli.StringFlag{Name: "blog", Usage: "Blog url"},
				cli.StringFlag{Name: "company", Usage: "Company name"},
				cli.StringFlag{Name: "location", Usage: "Location"},
				cli.StringFlag{Name: "bio", Usage: "Short biography"},
				cli.BoolTFlag{Name: "hireable", Usage: "Availability for hire, pass --hireable=false to clear it"},
			},
			Action: withClient(updateUser),
		},
		{
			Name:      "validate",
			ShortName: "v",
			Usage:     "Check an email and password against the api",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "email", Usage: "Email address of the user"},
				cli.StringFlag{Name: "password", Usage: "Password of the user"},
			},
			Action: withClient(validateCredentials),
		},
		{
			Name:      "exchange-token",
			Usage:     "Exchange an OAuth authorization code for an access token",
			ArgsUsage: "CODE",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "app-id", Usage: "Application client id, defaults to STAFFOMATIC_CLIENT_ID"},
				cli.StringFlag{Name: "app-secret", Usage: "Application client secret, defaults to STAFFOMATIC_CLIENT_SECRET"},
			},
			Action: withClient(exchangeCodeForToken),
		},
		{
			Name:  "authorize-url",
			Usage: "Print the url users grant the application access on",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "redirect", Usage: "Url the user is sent back to"},
				cli.StringFlag{Name: "state", Usage: "Opaque value echoed back on redirect"},
			},
			Action: withClient(authorizeURL),
		},
	}

	return app
}

func listUsers(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	return client.ListAllUsers(ctx, &staffomatic.ListUsersOptions{
		Since:   c.Int64("since"),
		PerPage: c.Int("per-page"),
	})
}

func getUser(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	user, err := client.GetUser(ctx, strings.TrimSpace(c.Args().First()))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func getUserResource(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	if c.NArg() != 2 {
		return nil, errors.New("USER and RESOURCE are required")
	}
	return client.GetUserResource(ctx, c.Args().Get(0), c.Args().Get(1))
}

func updateUser(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	update := schema.UserUpdate{}
	for flag, field := range map[string]**string{
		"name":     &update.Name,
		"email":    &update.Email,
		"blog":     &update.Blog,
		"company":  &update.Company,
		"location": &update.Location,
		"bio":      &update.Bio,
	} {
		if c.IsSet(flag) {
			*field = schema.StringP(c.String(flag))
		}
	}
	if c.IsSet("hireable") {
		update.Hireable = schema.BoolP(c.BoolT("hireable"))
	}

	if !update.HasUpdates() {
		return nil, errors.New("nothing to update")
	}
	return client.UpdateUser(ctx, update)
}

func validateCredentials(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	credentials := schema.Credentials{
		Email:    strings.TrimSpace(c.String("email")),
		Password: c.String("password"),
	}
	if credentials.Email == "" || credentials.Password == "" {
		return nil, errors.New("email and password are required")
	}

	valid, err := client.ValidateCredentials(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return map[string]bool{"valid": valid}, nil
}

func exchangeCodeForToken(ctx context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	code := strings.TrimSpace(c.Args().First())
	if code == "" {
		return nil, errors.New("CODE is required")
	}
	tkn, err := client.ExchangeCodeForToken(ctx, code, c.String("app-id"), c.String("app-secret"))
	if err != nil {
		return nil, err
	}

	token := tkn.Token()
	return map[string]interface{}{
		"access_token": token.AccessToken,
		"token_type":   token.Type(),
		"scope":        token.Extra("scope"),
	}, nil
}

func authorizeURL(_ context.Context, c *cli.Context, client staffomatic.ClientInterface) (interface{}, error) {
	if c.String("redirect") == "" {
		return nil, errors.New("redirect is required")
	}
	return map[string]string{"url": client.AuthorizeURL(c.String("redirect"), c.String("state"))}, nil
}

func dump(out io.Writer, result interface{}) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode result")
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
