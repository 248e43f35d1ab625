package twitter

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OAuth2 flow", func() {
	Describe("AuthCodeURL", func() {
		It("carries the PKCE challenge, state, and scopes", func() {
			client, err := NewTwitterClient(newTestConfig("https://api.twitter.com/2"))
			Expect(err).NotTo(HaveOccurred())

			authURL := client.AuthCodeURL("state-123", "challenge-abc")

			parsed, err := url.Parse(authURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Host).To(Equal("twitter.com"))

			params := parsed.Query()
			Expect(params.Get("response_type")).To(Equal("code"))
			Expect(params.Get("client_id")).To(Equal("client-id"))
			Expect(params.Get("state")).To(Equal("state-123"))
			Expect(params.Get("code_challenge")).To(Equal("challenge-abc"))
			Expect(params.Get("code_challenge_method")).To(Equal("S256"))
			Expect(params.Get("scope")).To(ContainSubstring("offline.access"))
			Expect(params.Get("redirect_uri")).To(Equal("http://localhost:3000/callback"))
		})
	})

	Describe("ExchangeCode", func() {
		It("redeems the code with the verifier and Basic auth", func() {
			var form url.Values
			var authHeader string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/2/oauth2/token"))
				Expect(r.ParseForm()).To(Succeed())
				form = r.PostForm
				authHeader = r.Header.Get("Authorization")

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"access_token": "access-xyz",
					"refresh_token": "refresh-xyz",
					"token_type": "bearer",
					"expires_in": 7200
				}`))
			}))
			defer server.Close()

			client, err := NewTwitterClient(newTestConfig(server.URL))
			Expect(err).NotTo(HaveOccurred())

			token, err := client.ExchangeCode(context.Background(), "auth-code", "verifier-123")
			Expect(err).NotTo(HaveOccurred())
			Expect(token.AccessToken).To(Equal("access-xyz"))
			Expect(token.RefreshToken).To(Equal("refresh-xyz"))
			Expect(token.Expiry).NotTo(BeZero())

			Expect(form.Get("grant_type")).To(Equal("authorization_code"))
			Expect(form.Get("code")).To(Equal("auth-code"))
			Expect(form.Get("code_verifier")).To(Equal("verifier-123"))

			expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))
			Expect(authHeader).To(Equal(expected))
		})

		It("surfaces the provider's error body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_grant"}`))
			}))
			defer server.Close()

			client, err := NewTwitterClient(newTestConfig(server.URL))
			Expect(err).NotTo(HaveOccurred())

			_, err = client.ExchangeCode(context.Background(), "bad-code", "verifier-123")
			Expect(err).To(BeAssignableToTypeOf(&APIError{}))
			Expect(err.(*APIError).StatusCode).To(Equal(http.StatusBadRequest))
			Expect(err.(*APIError).Body).To(ContainSubstring("invalid_grant"))
		})
	})

	Describe("RefreshToken", func() {
		It("uses the refresh_token grant", func() {
			var form url.Values

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.ParseForm()).To(Succeed())
				form = r.PostForm

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"access_token": "fresh-access",
					"refresh_token": "fresh-refresh",
					"token_type": "bearer",
					"expires_in": 7200
				}`))
			}))
			defer server.Close()

			client, err := NewTwitterClient(newTestConfig(server.URL))
			Expect(err).NotTo(HaveOccurred())

			token, err := client.RefreshToken(context.Background(), "old-refresh")
			Expect(err).NotTo(HaveOccurred())
			Expect(token.AccessToken).To(Equal("fresh-access"))
			Expect(token.RefreshToken).To(Equal("fresh-refresh"))

			Expect(form.Get("grant_type")).To(Equal("refresh_token"))
			Expect(form.Get("refresh_token")).To(Equal("old-refresh"))
		})
	})
})
