package main

import (
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ログイン時に渡すアクセストークン（本人確認用）
type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	// DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("connected to postgres")

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	// JWT issuer（JWT_SECRET未設定ならトークン発行なし）
	var issuer usecase.AccessTokenIssuer
	if cfg.JWTSecret != "" {
		issuer = &jwtIssuer{
			secret:    []byte(cfg.JWTSecret),
			accessTTL: 15 * time.Minute,
		}
	}

	// Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, validator.NewAuthValidator(), issuer)
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, cfg.DecrementStock)
	statusUC := usecase.NewOrderStatusUsecase(txm)

	if cfg.DecrementStock {
		logger.Info("decrement-on-order enabled")
	}

	// Server組み立て
	e := server.New(cfg, logger)
	handler.NewHealthHandler(gormDB).RegisterRoutes(e)
	handler.NewAuthHandler(authUC).RegisterRoutes(e)
	handler.NewUserHandler(userUC).RegisterRoutes(e)
	handler.NewProductHandler(productUC, cfg.UploadDir).RegisterRoutes(e)
	handler.NewOrderHandler(orderUC, statusUC).RegisterRoutes(e, cfg)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("server start", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
