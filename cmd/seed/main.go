package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"sampleapp/internal/cache"
	"sampleapp/internal/config"
	"sampleapp/internal/db"
	"sampleapp/internal/errors"
	"sampleapp/internal/logger"
	"sampleapp/internal/model"
	"sampleapp/internal/repository"
	"sampleapp/internal/service"
	"sampleapp/internal/validation"
)

const (
	sampleUsers     = 99
	postingUsers    = 6
	postsPerUser    = 50
	seedPassword    = "foobar"
	adminSeedName   = "Example User"
	adminSeedEmail  = "example@railstutorial.org"
	followingCutoff = 50
	followersCutoff = 40
)

var words = strings.Fields("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua")

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	log.Info("starting seed script")

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Error("connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Error("run migrations", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	validator := validation.New()
	accountRepo := repository.NewAccountRepository(gormDB)
	accounts := service.NewAccountService(accountRepo, cacheClient, validator, cfg.BcryptCost)
	posts := service.NewPostService(repository.NewPostRepository(gormDB), validator)
	follows := service.NewFollowService(accountRepo, repository.NewRelationshipRepository(gormDB))

	ctx := context.Background()

	admin, err := accounts.EnsureAdmin(ctx, adminSeedName, adminSeedEmail, seedPassword)
	if err != nil {
		log.Error("seed admin", "error", err)
		os.Exit(1)
	}

	users := []*model.Account{admin}
	created := 0
	for n := 1; n <= sampleUsers; n++ {
		account, isNew, err := findOrCreate(ctx, accounts, fmt.Sprintf("Person %d", n), fmt.Sprintf("example-%d@railstutorial.org", n))
		if err != nil {
			log.Error("seed account", "n", n, "error", err)
			os.Exit(1)
		}
		if isNew {
			created++
		}
		users = append(users, account)
	}
	log.Info("accounts seeded", "created", created, "total", len(users))

	postCount := 0
	_, existingPosts, err := posts.ListByAccount(ctx, admin.ID, 1, 1)
	if err != nil {
		log.Error("count microposts", "error", err)
		os.Exit(1)
	}
	for i := 0; existingPosts == 0 && i < postsPerUser; i++ {
		for _, owner := range users[:postingUsers] {
			if _, err := posts.Create(ctx, owner, sentence(i)); err != nil {
				log.Error("seed micropost", "owner", owner.ID, "error", err)
				os.Exit(1)
			}
			postCount++
		}
	}
	log.Info("microposts seeded", "count", postCount)

	edges := 0
	first := users[0]
	for _, followed := range users[2:followingCutoff] {
		if follow(ctx, follows, first, followed) {
			edges++
		}
	}
	for _, follower := range users[3:followersCutoff] {
		if follow(ctx, follows, follower, first) {
			edges++
		}
	}
	log.Info("seed completed", "accounts_created", created, "microposts", postCount, "relationships", edges)
}

// findOrCreate leaves existing accounts untouched so the script can be rerun.
func findOrCreate(ctx context.Context, accounts service.AccountService, name, email string) (*model.Account, bool, error) {
	existing, err := accounts.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if err != errors.ErrAccountNotFound {
		return nil, false, err
	}
	password := seedPassword
	account, err := accounts.Create(ctx, service.AccountAttrs{
		Name:                 &name,
		Email:                &email,
		Password:             &password,
		PasswordConfirmation: &password,
	})
	return account, err == nil, err
}

func follow(ctx context.Context, follows service.FollowService, actor, target *model.Account) bool {
	_, err := follows.Follow(ctx, actor, target.ID)
	return err == nil
}

func sentence(i int) string {
	n := 5 + i%6
	out := make([]string, n)
	for j := range out {
		out[j] = words[(i*7+j*3)%len(words)]
	}
	s := strings.Join(out, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
