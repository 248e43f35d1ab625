package memory

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

var _ = Describe("ConnectionStore", func() {
	var (
		store *ConnectionStore
		ctx   context.Context
	)

	BeforeEach(func() {
		store = NewConnectionStore(newTestDB(), newTestLogger())
		ctx = context.Background()
	})

	connected := func(profileID string) *models.SocialConnection {
		return &models.SocialConnection{
			ProfileID:       profileID,
			Platform:        models.PlatformTwitter,
			IsConnected:     true,
			AccessToken:     "access-1",
			RefreshToken:    "refresh-1",
			AccountUsername: "alice",
		}
	}

	Describe("Upsert", func() {
		It("creates then replaces the row for one profile and platform", func() {
			Expect(store.Upsert(ctx, connected("p1"))).To(Succeed())

			updated := connected("p1")
			updated.AccessToken = "access-2"
			updated.AccountUsername = "alice2"
			Expect(store.Upsert(ctx, updated)).To(Succeed())

			conn, err := store.GetActive(ctx, "p1", models.PlatformTwitter)
			Expect(err).NotTo(HaveOccurred())
			Expect(conn.AccessToken).To(Equal("access-2"))
			Expect(conn.AccountUsername).To(Equal("alice2"))
		})
	})

	Describe("GetActive", func() {
		It("rejects profiles that never connected", func() {
			_, err := store.GetActive(ctx, "nobody", models.PlatformTwitter)
			Expect(err).To(MatchError(ErrNoConnection))
		})

		It("rejects disconnected rows", func() {
			Expect(store.Upsert(ctx, connected("p1"))).To(Succeed())
			Expect(store.Disconnect(ctx, "p1", models.PlatformTwitter)).To(Succeed())

			_, err := store.GetActive(ctx, "p1", models.PlatformTwitter)
			Expect(err).To(MatchError(ErrNoConnection))
		})

		It("rejects connected rows with no stored token", func() {
			conn := connected("p1")
			conn.AccessToken = ""
			Expect(store.Upsert(ctx, conn)).To(Succeed())

			_, err := store.GetActive(ctx, "p1", models.PlatformTwitter)
			Expect(err).To(MatchError(ErrNoConnection))
		})
	})

	Describe("Disconnect", func() {
		It("clears the tokens but keeps the account snapshot", func() {
			Expect(store.Upsert(ctx, connected("p1"))).To(Succeed())
			Expect(store.Disconnect(ctx, "p1", models.PlatformTwitter)).To(Succeed())

			var row models.SocialConnection
			Expect(store.db.Where("profile_id = ?", "p1").First(&row).Error).To(Succeed())
			Expect(row.IsConnected).To(BeFalse())
			Expect(row.AccessToken).To(BeEmpty())
			Expect(row.RefreshToken).To(BeEmpty())
			Expect(row.AccountUsername).To(Equal("alice"))
		})

		It("is a no-op for profiles without a row", func() {
			Expect(store.Disconnect(ctx, "nobody", models.PlatformTwitter)).To(Succeed())
		})
	})

	Describe("ListExpiring", func() {
		It("returns only connected rows expiring within the horizon", func() {
			soon := time.Now().Add(10 * time.Minute)
			later := time.Now().Add(2 * time.Hour)

			expiring := connected("p1")
			expiring.TokenExpiresAt = &soon
			Expect(store.Upsert(ctx, expiring)).To(Succeed())

			healthy := connected("p2")
			healthy.TokenExpiresAt = &later
			Expect(store.Upsert(ctx, healthy)).To(Succeed())

			noRefresh := connected("p3")
			noRefresh.TokenExpiresAt = &soon
			noRefresh.RefreshToken = ""
			Expect(store.Upsert(ctx, noRefresh)).To(Succeed())

			conns, err := store.ListExpiring(ctx, 30*time.Minute)
			Expect(err).NotTo(HaveOccurred())
			Expect(conns).To(HaveLen(1))
			Expect(conns[0].ProfileID).To(Equal("p1"))
		})
	})

	Describe("UpdateTokens", func() {
		It("replaces the token set in place", func() {
			Expect(store.Upsert(ctx, connected("p1"))).To(Succeed())
			conn, err := store.GetActive(ctx, "p1", models.PlatformTwitter)
			Expect(err).NotTo(HaveOccurred())

			expiry := time.Now().Add(2 * time.Hour)
			Expect(store.UpdateTokens(ctx, conn.ID, "new-access", "new-refresh", &expiry)).To(Succeed())

			refreshed, err := store.GetActive(ctx, "p1", models.PlatformTwitter)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.AccessToken).To(Equal("new-access"))
			Expect(refreshed.RefreshToken).To(Equal("new-refresh"))
			Expect(refreshed.TokenExpiresAt).NotTo(BeNil())
		})
	})
})
