// Package preflight asks IAM whether the calling principal may perform an
// action before the action is attempted.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/gurre/awscmd/aws"
)

// ErrDenied is returned when the simulation does not allow the action.
var ErrDenied = errors.New("action denied by IAM policy simulation")

// Checker simulates the caller's policies for one action at a time.
// Decisions are not cached; the principal is resolved once.
type Checker struct {
	iam aws.IAMClient
	sts aws.STSClient

	mu        sync.Mutex
	principal string
}

// NewChecker creates a Checker.
func NewChecker(iamClient aws.IAMClient, stsClient aws.STSClient) *Checker {
	return &Checker{iam: iamClient, sts: stsClient}
}

// Check returns nil if action is allowed, an error wrapping ErrDenied if it is
// not, and any other error if the simulation itself failed.
func (c *Checker) Check(ctx context.Context, action string) error {
	principal, err := c.resolvePrincipal(ctx)
	if err != nil {
		return err
	}

	out, err := c.iam.SimulatePrincipalPolicy(ctx, &iam.SimulatePrincipalPolicyInput{
		PolicySourceArn: &principal,
		ActionNames:     []string{action},
	})
	if err != nil {
		return fmt.Errorf("failed to simulate %s for %s: %w", action, principal, err)
	}

	for _, r := range out.EvaluationResults {
		if r.EvalActionName != nil && !strings.EqualFold(*r.EvalActionName, action) {
			continue
		}
		if r.EvalDecision != types.PolicyEvaluationDecisionTypeAllowed {
			return fmt.Errorf("%w: %s is %s for %s", ErrDenied, action, r.EvalDecision, principal)
		}
		return nil
	}
	return fmt.Errorf("%w: no evaluation result for %s", ErrDenied, action)
}

func (c *Checker) resolvePrincipal(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.principal != "" {
		return c.principal, nil
	}

	out, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	if out.Arn == nil {
		return "", errors.New("caller identity has no ARN")
	}
	c.principal = PolicySourceARN(*out.Arn)
	return c.principal, nil
}

// PolicySourceARN converts a caller ARN into one IAM can simulate. An STS
// assumed-role session ARN becomes the ARN of its role; other ARNs are
// returned unchanged. Role paths are not recoverable from a session ARN.
func PolicySourceARN(callerARN string) string {
	// arn:aws:sts::123456789012:assumed-role/RoleName/SessionName
	parts := strings.SplitN(callerARN, ":", 6)
	if len(parts) != 6 || parts[2] != "sts" {
		return callerARN
	}
	resource := strings.Split(parts[5], "/")
	if len(resource) < 2 || resource[0] != "assumed-role" {
		return callerARN
	}
	return fmt.Sprintf("arn:%s:iam::%s:role/%s", parts[1], parts[4], resource[1])
}
