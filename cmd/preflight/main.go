// Command preflight checks that every backing service the API needs is
// reachable with the current .env, and can promote a user to admin.
//
//	go run ./cmd/preflight
//	go run ./cmd/preflight -promote <firebase uid>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xyz-asif/voiceup/internal/config"
	"github.com/xyz-asif/voiceup/internal/database"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/pkg/cloudinary"
)

func main() {
	promote := flag.String("promote", "", "Firebase uid of an existing user to make admin")
	flag.Parse()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Testing MongoDB connection...")
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		fail("MongoDB connection failed", err)
	}
	defer db.Disconnect(context.Background())

	setName, err := db.ReplicaSet(ctx)
	if err != nil {
		fail("MongoDB hello failed", err)
	}
	if setName == "" {
		fail("MongoDB is a standalone server", fmt.Errorf("votes need transactions and live updates need change streams; start mongod with --replSet"))
	}
	fmt.Printf("✅ MongoDB connected (replica set %q, database %q)\n", setName, cfg.MongoDB)

	fmt.Println("\nTesting Firebase Auth connection...")
	if _, err := auth.InitFirebase(cfg); err != nil {
		fail("Firebase Auth client failed", err)
	}
	fmt.Println("✅ Firebase Auth ready")

	fmt.Println("\nTesting Cloudinary configuration...")
	if _, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder); err != nil {
		fmt.Printf("⚠️  Cloudinary not configured, evidence uploads will be disabled: %v\n", err)
	} else {
		fmt.Printf("✅ Cloudinary ready (folder %q)\n", cfg.CloudinaryUploadFolder)
	}

	if *promote != "" {
		fmt.Printf("\nPromoting %s to admin...\n", *promote)
		if err := auth.NewRepository(db.Database).SetRole(ctx, *promote, auth.RoleAdmin); err != nil {
			fail("Promotion failed (the user must have signed in once)", err)
		}
		fmt.Println("✅ Promoted")
	}

	fmt.Println("\n🎉 All systems ready!")
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
