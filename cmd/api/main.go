package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/petfolk/vetLink-gRPC/internal/auth"
	"github.com/petfolk/vetLink-gRPC/internal/chat"
	"github.com/petfolk/vetLink-gRPC/internal/data"
	"github.com/petfolk/vetLink-gRPC/internal/db"
	"github.com/petfolk/vetLink-gRPC/internal/middleware"
	"github.com/petfolk/vetLink-gRPC/internal/telemetry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

func main() {
	// Read configuration from environment; a local .env is honored when
	// present.
	_ = godotenv.Load(".env")

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI must be set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	jwtKeysEnv := os.Getenv("JWT_KEYS") // optional: format kid:secret,kid2:secret2
	jwtActiveKid := os.Getenv("JWT_ACTIVE_KID")
	if jwtKeysEnv == "" && jwtSecret == "" {
		log.Fatal("either JWT_SECRET or JWT_KEYS must be set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "50051"
	}

	ctx := context.Background()

	// Initialize database
	dbClient, err := db.New(ctx, mongoURI)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer func() {
		_ = dbClient.Close(ctx)
	}()

	// Ensure indexes exist before serving; the unique user_id/email indexes
	// back the duplicate-row errors the handlers rely on.
	if err := dbClient.CreateIndexes(ctx); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	// Create stores
	usersStore := data.NewUsersStore(dbClient.UsersCollection())
	profilesStore := data.NewProfilesStore(dbClient.ProfilesCollection())
	msgsStore := data.NewMessagesStore(dbClient.MessagesCollection())
	activityStore := data.NewVetActivityStore(dbClient.VetActivityCollection())
	vetProfilesStore := data.NewVetProfilesStore(dbClient.VetProfilesCollection())
	petsStore := data.NewPetsStore(dbClient.PetsCollection())

	// Initialize auth manager (tokens valid for 24 hours). JWT_KEYS enables
	// rotation; a bare JWT_SECRET keeps the single-key setup.
	var jwtMgr *auth.JWTManager
	if jwtKeysEnv != "" {
		keyMap := map[string]string{}
		for _, p := range strings.Split(jwtKeysEnv, ",") {
			if p == "" {
				continue
			}
			parts := strings.SplitN(p, ":", 2)
			if len(parts) != 2 {
				log.Fatalf("invalid JWT_KEYS entry: %s", p)
			}
			keyMap[parts[0]] = parts[1]
		}
		jwtMgr = auth.NewJWTManagerFromKeys(keyMap, jwtActiveKid, 24*time.Hour)
	} else {
		jwtMgr = auth.NewJWTManager(jwtSecret, 24*time.Hour)
	}

	// Rate limiter for the unauthenticated endpoints. RATE_LIMIT_RPM
	// controls requests per minute for Register and Login.
	rateRPM := 10
	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateRPM = n
		}
	}
	limiterStore := middleware.NewLimiterStore(rateRPM, 3, 1*time.Minute)
	defer limiterStore.Stop()
	limited := map[string]bool{
		"/vetlink.v1.VetLinkService/Register": true,
		"/vetlink.v1.VetLinkService/Login":    true,
	}

	// assemble server opts and chain unary interceptors: rate limiter -> auth
	var serverOpts []grpc.ServerOption

	// If TLS certs are configured, create server credentials and require TLS
	certFile := os.Getenv("TLS_CERT")
	keyFile := os.Getenv("TLS_KEY")
	requireTLS := os.Getenv("REQUIRE_TLS") == "true"
	if certFile != "" && keyFile != "" {
		creds, err := credentials.NewServerTLSFromFile(certFile, keyFile)
		if err != nil {
			log.Fatalf("failed to load TLS certs: %v", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
	} else if requireTLS {
		log.Fatal("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured")
	}

	serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(
		middleware.RateLimitUnaryInterceptor(limiterStore, limited),
		authUnaryInterceptor(jwtMgr),
	))
	serverOpts = append(serverOpts, grpc.ChainStreamInterceptor(authStreamInterceptor(jwtMgr)))

	grpcServer := grpc.NewServer(serverOpts...)

	// Room hub, service instance, registration
	hub := chat.NewRoomHub()
	srv := newServer(usersStore, profilesStore, msgsStore, activityStore, vetProfilesStore, petsStore, jwtMgr, hub)
	registerService(grpcServer, srv)

	// Optional Prometheus endpoint on a side listener
	if metricsAddr := os.Getenv("METRICS_ADDR"); metricsAddr != "" {
		go func() {
			log.Printf("metrics listening on %s", metricsAddr)
			if err := telemetry.Serve(metricsAddr); err != nil {
				log.Printf("metrics server exit: %v", err)
			}
		}()
	}

	// Listen and serve
	listenAddr := fmt.Sprintf(":%s", port)
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", listenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC server exit: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("shutting down gRPC server")
	grpcServer.GracefulStop()
}
