package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docvault/go-doc-share/internal/adapter"
	"github.com/docvault/go-doc-share/internal/config"
	"github.com/docvault/go-doc-share/internal/crypto"
	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/service"
	"github.com/docvault/go-doc-share/internal/utils"
	"github.com/docvault/go-doc-share/internal/vault"
	"github.com/docvault/go-doc-share/models"
)

// App is the command-line client. Every command is stateless: it
// authenticates, performs one operation against the server, and exits. The
// vault session lives only for the duration of a command.
type App struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter
	session  *vault.Session
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || serverAdapter == nil {
		return nil, fmt.Errorf("client app requires services and a server adapter")
	}

	return &App{
		services: services,
		adapter:  serverAdapter,
		session:  vault.New(crypto.NewKeyWrapper()),
		workers:  workers,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	if len(os.Args) < 2 {
		a.usage()
		return fmt.Errorf("no command given")
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "register":
		return a.register(ctx, os.Args[2:])
	case "vault-setup":
		return a.vaultSetup(ctx, os.Args[2:])
	case "share":
		return a.share(ctx, os.Args[2:])
	case "revoke":
		return a.revoke(ctx, os.Args[2:])
	case "shares":
		return a.ownerShares(ctx, os.Args[2:])
	case "received":
		return a.received(ctx, os.Args[2:])
	case "watch":
		return a.watch(ctx, os.Args[2:])
	case "download":
		return a.download(ctx, os.Args[2:])
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

func (a *App) usage() {
	fmt.Fprintln(os.Stderr, `usage: doc-share-client <command> [flags]

commands:
  register     create an account
  vault-setup  generate and upload wrapped vault key material
  share        grant a trusted person access to a document
  revoke       revoke a share
  shares       list shares you have issued
  received     list shares addressed to you (cached locally)
  watch        keep the local share cache in sync until interrupted
  download     fetch the encrypted blob behind a share`)
}

// credentialFlags registers the login/passphrase flags every command needs.
func credentialFlags(fs *flag.FlagSet) (login, passphrase *string) {
	login = fs.String("login", "", "account login")
	passphrase = fs.String("pass", "", "vault passphrase")
	return login, passphrase
}

// authVerifier derives the client-side auth verifier from the passphrase.
// The plaintext passphrase never leaves the process; the server receives and
// stores only derived values.
func authVerifier(login, passphrase string) string {
	return utils.HashString(passphrase, login)
}

func (a *App) loginToServer(ctx context.Context, login, passphrase string) (models.Token, error) {
	if login == "" || passphrase == "" {
		return models.Token{}, fmt.Errorf("-login and -pass are required")
	}

	token, err := a.adapter.Login(ctx, models.User{
		Login:    login,
		AuthHash: authVerifier(login, passphrase),
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	return token, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *passphrase == "" {
		return fmt.Errorf("-login and -pass are required")
	}

	user, err := a.adapter.Register(ctx, models.User{
		Login:    *login,
		Name:     *name,
		AuthHash: authVerifier(*login, *passphrase),
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Printf("registered as %s (id %d)\n", user.Login, user.UserID)
	return nil
}

func (a *App) vaultSetup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vault-setup", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.loginToServer(ctx, *login, *passphrase); err != nil {
		return err
	}

	material, recoveryKey, err := a.session.Setup(*passphrase)
	if err != nil {
		return fmt.Errorf("vault setup: %w", err)
	}

	if err := a.adapter.SaveVaultKeys(ctx, material); err != nil {
		return fmt.Errorf("upload vault keys: %w", err)
	}

	fmt.Println("vault created; recovery key (write it down, it is shown once):")
	fmt.Println(recoveryKey)
	return nil
}

// unlockVault fetches the wrapped key material and unlocks the session with
// the passphrase.
func (a *App) unlockVault(ctx context.Context, passphrase string) error {
	material, exists, err := a.adapter.GetVaultKeys(ctx)
	if err != nil {
		return fmt.Errorf("fetch vault keys: %w", err)
	}
	if !exists {
		return fmt.Errorf("no vault set up yet, run vault-setup first")
	}

	if err := a.session.Unlock(passphrase, material); err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}

	return nil
}

func (a *App) share(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	docID := fs.String("doc", "", "document id")
	personID := fs.String("person", "", "trusted person id")
	wrappedDEK := fs.String("wrapped-dek", "", "base64 DEK already wrapped for the recipient")
	permission := fs.String("permission", "", "view or download (default view)")
	ttl := fs.Duration("ttl", 0, "optional lifetime, e.g. 72h (0 = no expiry)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *docID == "" || *personID == "" || *wrappedDEK == "" {
		return fmt.Errorf("-doc, -person and -wrapped-dek are required")
	}
	if _, err := base64.StdEncoding.DecodeString(*wrappedDEK); err != nil {
		return fmt.Errorf("-wrapped-dek must be base64: %w", err)
	}

	if _, err := a.loginToServer(ctx, *login, *passphrase); err != nil {
		return err
	}
	if err := a.unlockVault(ctx, *passphrase); err != nil {
		return err
	}
	defer a.session.Lock()

	req := models.ShareCreateRequest{
		DocumentID:      *docID,
		TrustedPersonID: *personID,
		WrappedDEKForTP: *wrappedDEK,
		Permission:      models.Permission(*permission),
	}
	if *ttl > 0 {
		expires := time.Now().Add(*ttl).UTC()
		req.ExpiresAt = &expires
	}

	shareID, err := a.adapter.CreateShare(ctx, req)
	if err != nil {
		return fmt.Errorf("create share: %w", err)
	}

	fmt.Printf("share issued: %s\n", shareID)
	return nil
}

func (a *App) revoke(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("revoke", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	shareID := fs.String("id", "", "share id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shareID == "" {
		return fmt.Errorf("-id is required")
	}

	if _, err := a.loginToServer(ctx, *login, *passphrase); err != nil {
		return err
	}

	if err := a.adapter.RevokeShare(ctx, *shareID); err != nil {
		return fmt.Errorf("revoke share: %w", err)
	}

	fmt.Println("share revoked")
	return nil
}

func (a *App) ownerShares(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("shares", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.loginToServer(ctx, *login, *passphrase)
	if err != nil {
		return err
	}

	tokens, err := a.adapter.OwnerShares(ctx, token.UserID)
	if err != nil {
		return fmt.Errorf("list shares: %w", err)
	}

	return printJSON(tokens)
}

func (a *App) received(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("received", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.loginToServer(ctx, *login, *passphrase)
	if err != nil {
		return err
	}

	// Refresh the local cache from the server, then serve the listing from
	// the cache; on a transport failure fall through to the stale snapshot.
	if err := a.services.SyncService.RefreshReceivedShares(ctx, token.UserID); err != nil {
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
	}

	shares, err := a.services.SyncService.CachedReceivedShares(ctx, token.UserID)
	if err != nil {
		return fmt.Errorf("read cached shares: %w", err)
	}

	return printJSON(shares)
}

// watch runs the background sync job until the process is interrupted, then
// prints the final cached listing.
func (a *App) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.loginToServer(ctx, *login, *passphrase)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.services.SyncJob.Start(runCtx, token.UserID, a.workers.SyncInterval)
	fmt.Fprintln(os.Stderr, "syncing received shares, press Ctrl-C to stop")

	<-runCtx.Done()
	a.services.SyncJob.Stop()

	shares, err := a.services.SyncService.CachedReceivedShares(ctx, token.UserID)
	if err != nil {
		return fmt.Errorf("read cached shares: %w", err)
	}

	return printJSON(shares)
}

func (a *App) download(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	login, passphrase := credentialFlags(fs)
	shareID := fs.String("id", "", "share id")
	out := fs.String("out", "", "output file for the encrypted blob")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shareID == "" || *out == "" {
		return fmt.Errorf("-id and -out are required")
	}

	if _, err := a.loginToServer(ctx, *login, *passphrase); err != nil {
		return err
	}

	data, err := a.adapter.DownloadSharedFile(ctx, *shareID)
	if err != nil {
		return fmt.Errorf("download shared file: %w", err)
	}

	// The bytes are ciphertext; decryption requires the wrapped DEK carried
	// on the share token and happens outside this command.
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}

	fmt.Printf("wrote %d encrypted bytes to %s\n", len(data), *out)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
