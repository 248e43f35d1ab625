package pkce

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

var _ = Describe("SessionManager", func() {
	var (
		manager *SessionManager
		testDB  *gorm.DB
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		testDB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(testDB.AutoMigrate(&models.PKCESession{})).To(Succeed())

		logger := logrus.New()
		logger.SetLevel(logrus.ErrorLevel)
		manager = NewSessionManager(testDB, logger)
		ctx = context.Background()
	})

	Describe("Begin", func() {
		It("stores a session with a fresh state and verifier", func() {
			session, err := manager.Begin(ctx, "profile-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.State).NotTo(BeEmpty())
			Expect(session.CodeVerifier).NotTo(BeEmpty())
			Expect(session.ProfileID).To(Equal("profile-1"))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(DefaultSessionTTL), time.Minute))

			var count int64
			Expect(testDB.Model(&models.PKCESession{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("issues distinct states for concurrent attempts by one profile", func() {
			first, err := manager.Begin(ctx, "profile-1")
			Expect(err).NotTo(HaveOccurred())
			second, err := manager.Begin(ctx, "profile-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.State).NotTo(Equal(second.State))
		})
	})

	Describe("Consume", func() {
		It("returns the session once and only once", func() {
			session, err := manager.Begin(ctx, "profile-1")
			Expect(err).NotTo(HaveOccurred())

			consumed, err := manager.Consume(ctx, session.State)
			Expect(err).NotTo(HaveOccurred())
			Expect(consumed.CodeVerifier).To(Equal(session.CodeVerifier))
			Expect(consumed.ProfileID).To(Equal("profile-1"))

			_, err = manager.Consume(ctx, session.State)
			Expect(err).To(MatchError(ErrSessionNotFound))
		})

		It("rejects unknown states", func() {
			_, err := manager.Consume(ctx, "no-such-state")
			Expect(err).To(MatchError(ErrSessionNotFound))
		})

		It("treats expired sessions as missing", func() {
			session := &models.PKCESession{
				State:        "stale-state",
				CodeVerifier: "verifier",
				ProfileID:    "profile-1",
				ExpiresAt:    time.Now().Add(-time.Minute),
			}
			Expect(testDB.Create(session).Error).To(Succeed())

			_, err := manager.Consume(ctx, "stale-state")
			Expect(err).To(MatchError(ErrSessionNotFound))
		})
	})

	Describe("PurgeExpired", func() {
		It("removes only sessions past their expiry", func() {
			live, err := manager.Begin(ctx, "profile-1")
			Expect(err).NotTo(HaveOccurred())

			stale := &models.PKCESession{
				State:        "stale-state",
				CodeVerifier: "verifier",
				ProfileID:    "profile-2",
				ExpiresAt:    time.Now().Add(-time.Minute),
			}
			Expect(testDB.Create(stale).Error).To(Succeed())

			purged, err := manager.PurgeExpired(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(purged).To(Equal(int64(1)))

			_, err = manager.Consume(ctx, live.State)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
