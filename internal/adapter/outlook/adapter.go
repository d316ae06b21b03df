// Package outlook fetches mailbox calendars from Microsoft Graph using
// an app-only (client credentials) registration.
package outlook

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"

	"slacktime/internal/core"
)

const graphScope = "https://graph.microsoft.com/.default"

// tokenCredential bridges an oauth2 token source into the Azure SDK's
// TokenCredential interface, so the Graph SDK can authenticate requests.
type tokenCredential struct {
	source oauth2.TokenSource
}

func (c tokenCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	tok, err := c.source.Token()
	if err != nil {
		return azcore.AccessToken{}, err
	}
	return azcore.AccessToken{
		Token:     tok.AccessToken,
		ExpiresOn: tok.Expiry,
	}, nil
}

// Adapter implements the event provider over the official Microsoft
// Graph SDK. One Adapter serves a whole batch; Login must succeed
// before FetchEvents is used.
type Adapter struct {
	tenantID     string
	clientID     string
	clientSecret string
	timezone     string

	client *msgraphsdk.GraphServiceClient
}

func NewAdapter(tenantID, clientID, clientSecret, timezone string) *Adapter {
	return &Adapter{
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		timezone:     timezone,
	}
}

// Login acquires a client-credentials token and initializes the Graph
// client. The token must look like a JWT; anything else means the app
// registration is misconfigured.
func (a *Adapter) Login(ctx context.Context) error {
	if a.tenantID == "" || a.clientID == "" || a.clientSecret == "" {
		return fmt.Errorf("tenant_id, client_id and client_secret are required: %w", core.ErrAuth)
	}

	conf := &clientcredentials.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		TokenURL:     microsoft.AzureADEndpoint(a.tenantID).TokenURL,
		Scopes:       []string{graphScope},
	}
	source := conf.TokenSource(ctx)

	tok, err := source.Token()
	if err != nil {
		return fmt.Errorf("acquire graph token: %v: %w", err, core.ErrAuth)
	}
	if !strings.Contains(tok.AccessToken, ".") {
		return fmt.Errorf("token is not a JWT: %w", core.ErrAuth)
	}

	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(
		tokenCredential{source: oauth2.ReuseTokenSource(tok, source)},
		[]string{graphScope},
	)
	if err != nil {
		return fmt.Errorf("create graph client: %w", err)
	}
	a.client = client
	return nil
}
