// Command client is a small CLI for the go-auth-service HTTP API.
// It covers the auth flows (signup, signin, profile, logout) and the user
// management operations, and is mainly useful for smoke-testing a running
// server.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

func main() {
	var (
		address  = flag.String("a", "localhost:8080", "server address host:port")
		action   = flag.String("action", "", "one of: signup, signin, profile, logout, list, get, update, delete")
		email    = flag.String("email", "", "account email")
		name     = flag.String("name", "", "display name (signup/update)")
		password = flag.String("password", "", "account password")
		token    = flag.String("token", "", "bearer token for authenticated actions")
		id       = flag.String("id", "", "user id (get/update/delete)")
	)
	flag.Parse()

	log := logger.NewLogger("auth-client")

	client, err := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch *action {
	case "signup":
		authResponse, err := client.SignUp(ctx, models.SignupRequest{
			Email:    *email,
			Name:     *name,
			Password: *password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("signup failed")
		}
		log.Info().
			Str("id", authResponse.User.ID).
			Str("access_token", authResponse.AccessToken).
			Str("expires_in", authResponse.ExpiresIn).
			Msg("signed up")

	case "signin":
		authResponse, err := client.SignIn(ctx, models.Credentials{
			Email:    *email,
			Password: *password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("signin failed")
		}
		log.Info().
			Str("id", authResponse.User.ID).
			Str("access_token", authResponse.AccessToken).
			Str("expires_in", authResponse.ExpiresIn).
			Msg("signed in")

	case "profile":
		publicUser, err := client.Profile(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("profile failed")
		}
		log.Info().Any("user", publicUser).Msg("profile")

	case "logout":
		if err := client.Logout(ctx); err != nil {
			log.Fatal().Err(err).Msg("logout failed")
		}
		log.Info().Msg("logged out")

	case "list":
		users, err := client.ListUsers(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("list users failed")
		}
		log.Info().Any("users", users).Msg("users")

	case "get":
		publicUser, err := client.GetUser(ctx, *id)
		if err != nil {
			log.Fatal().Err(err).Msg("get user failed")
		}
		log.Info().Any("user", publicUser).Msg("user")

	case "update":
		update := models.UserUpdate{}
		if *email != "" {
			update.Email = email
		}
		if *name != "" {
			update.Name = name
		}

		publicUser, err := client.UpdateUser(ctx, *id, update)
		if err != nil {
			log.Fatal().Err(err).Msg("update user failed")
		}
		log.Info().Any("user", publicUser).Msg("user updated")

	case "delete":
		if err := client.DeleteUser(ctx, *id); err != nil {
			log.Fatal().Err(err).Msg("delete user failed")
		}
		log.Info().Str("id", *id).Msg("user deleted")

	default:
		log.Fatal().Str("action", *action).Msg("unknown or missing -action")
	}
}
