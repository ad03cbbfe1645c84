package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/tasks/v1"
)

const (
	// ClientSecretsFile holds the Google API credentials (client_id,
	// client_secret, redirect_uris), placed in the app config directory.
	ClientSecretsFile = "credentials.json"

	// TokenFile stores the obtained OAuth token next to the credentials.
	TokenFile = "token.json"

	// LocalhostAuthPort is where the local server captures the OAuth redirect.
	LocalhostAuthPort = "6789"

	xdgAppName = "harmonyday"
)

// Scopes covers everything a planning run touches: calendar read/write,
// tasks read, habit sheet read.
func Scopes() []string {
	return []string{
		calendar.CalendarEventsScope,
		calendar.CalendarReadonlyScope,
		tasks.TasksReadonlyScope,
		sheets.SpreadsheetsReadonlyScope,
	}
}

// GetConfig reads the client secrets file into an oauth2.Config, forcing the
// redirect to the local callback port.
func GetConfig(scopes []string) (*oauth2.Config, error) {
	base, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filepath.Join(base, ClientSecretsFile))
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%s/oauth2callback", LocalhostAuthPort)
	return cfg, nil
}

// GetClient returns an authenticated *http.Client. It loads the cached token
// when present, otherwise it runs the web authorization flow and saves the
// result. Token refresh is handled by the oauth2 transport.
func GetClient(ctx context.Context, scopes []string) (*http.Client, error) {
	cfg, err := GetConfig(scopes)
	if err != nil {
		return nil, err
	}

	base, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	tokenFile := filepath.Join(base, TokenFile)
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		log.Printf("No existing token found at %s. Starting web authorization flow...", tokenFile)
		tok, err = getTokenFromWeb(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		saveToken(tokenFile, tok)
	}

	return cfg.Client(ctx, tok), nil
}

// getTokenFromWeb runs the OAuth 2.0 authorization code flow via a local web
// server that captures the redirect.
func getTokenFromWeb(cfg *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string)
	errCh := make(chan error)

	listener, err := net.Listen("tcp", ":"+LocalhostAuthPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start listener on port %s: %w", LocalhostAuthPort, err)
	}
	defer listener.Close()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "Authorization code not found", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization code not found in redirect URL")
				return
			}
			fmt.Fprint(w, "Authentication successful! You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// AccessTypeOffline so a refresh token comes back.
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Open the following URL in your browser to authorize harmonyday:\n%s\n", authURL)
	log.Println("Waiting for authorization code...")

	select {
	case code := <-codeCh:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tok, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
		}
		server.Shutdown(ctx)
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-time.After(5 * time.Minute):
		server.Shutdown(context.Background())
		return nil, fmt.Errorf("authorization timed out, please try again")
	}
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", file, err)
	}
	return tok, nil
}

func saveToken(path string, token *oauth2.Token) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.Printf("Warning: could not create token directory: %v", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Unable to cache OAuth token to %s: %v", path, err)
	}
	defer f.Close()
	json.NewEncoder(f).Encode(token)
}

func GetXdgHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}
