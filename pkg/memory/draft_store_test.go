package memory

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

var _ = Describe("DraftStore", func() {
	var (
		store *DraftStore
		ctx   context.Context
	)

	BeforeEach(func() {
		store = NewDraftStore(newTestDB(), newTestLogger())
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("stores a draft with the draft status", func() {
			draft, err := store.Create(ctx, "p1", "draft text", "", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(draft.ID).NotTo(BeZero())
			Expect(draft.Status).To(Equal(models.StatusDraft))
			Expect(draft.Platform).To(Equal(models.PlatformTwitter))
		})
	})

	Describe("Publish", func() {
		It("moves a draft to published exactly once", func() {
			draft, err := store.Create(ctx, "p1", "draft text", "", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Publish(ctx, draft.ID)).To(Succeed())

			// the transition is one-way: re-publishing finds no draft row
			Expect(store.Publish(ctx, draft.ID)).To(MatchError(ErrDraftNotFound))

			drafts, err := store.ListDrafts(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(drafts).To(BeEmpty())
		})
	})

	Describe("ListDrafts", func() {
		It("excludes published posts", func() {
			first, err := store.Create(ctx, "p1", "one", "", "")
			Expect(err).NotTo(HaveOccurred())
			_, err = store.Create(ctx, "p1", "two", "", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Publish(ctx, first.ID)).To(Succeed())

			drafts, err := store.ListDrafts(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(drafts).To(HaveLen(1))
			Expect(drafts[0].Content).To(Equal("two"))
		})
	})

	Describe("UpdateContent", func() {
		It("edits draft text in place", func() {
			draft, err := store.Create(ctx, "p1", "tpyo", "", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(store.UpdateContent(ctx, draft.ID, "typo")).To(Succeed())

			drafts, err := store.ListDrafts(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(drafts[0].Content).To(Equal("typo"))
		})

		It("fails for missing drafts", func() {
			Expect(store.UpdateContent(ctx, 999, "x")).To(MatchError(ErrDraftNotFound))
		})
	})
})

var _ = Describe("ProfileStore", func() {
	var (
		store *ProfileStore
		ctx   context.Context
	)

	BeforeEach(func() {
		store = NewProfileStore(newTestDB(), newTestLogger())
		ctx = context.Background()
	})

	It("loads profiles by id", func() {
		Expect(store.db.Create(&models.Profile{
			ID:               "p1",
			Email:            "a@example.com",
			TopicsOfInterest: []string{"golang"},
		}).Error).To(Succeed())

		profile, err := store.Get(ctx, "p1")
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.Email).To(Equal("a@example.com"))
		Expect([]string(profile.TopicsOfInterest)).To(Equal([]string{"golang"}))

		_, err = store.Get(ctx, "missing")
		Expect(err).To(MatchError(ErrProfileNotFound))
	})

	It("treats missing onboarding data as absent rather than an error", func() {
		onboarding, err := store.GetOnboardingByEmail(ctx, "a@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(onboarding).To(BeNil())

		onboarding, err = store.GetOnboardingByEmail(ctx, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(onboarding).To(BeNil())
	})

	It("loads onboarding answers by email", func() {
		Expect(store.db.Create(&models.OnboardingProfile{
			Email:    "a@example.com",
			UserType: "founder",
		}).Error).To(Succeed())

		onboarding, err := store.GetOnboardingByEmail(ctx, "a@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(onboarding.UserType).To(Equal("founder"))
	})
})
