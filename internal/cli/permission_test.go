package cli

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
)

func TestRunPermissionSet(t *testing.T) {
	t.Parallel()

	t.Run("grants permission", func(t *testing.T) {
		t.Parallel()

		env, mocks := testEnv()
		var gotACL, gotPrincipal string
		var gotPerm adobeconnect.Permission
		mocks.api.SetPermissionFunc = func(_ context.Context, aclID, principalID string, perm adobeconnect.Permission) error {
			gotACL, gotPrincipal, gotPerm = aclID, principalID, perm
			return nil
		}

		if err := runPermissionSet(testCmd(context.Background()), env, "200", "300", "host"); err != nil {
			t.Fatalf("runPermissionSet() unexpected error: %v", err)
		}
		if gotACL != "200" || gotPrincipal != "300" || gotPerm != adobeconnect.PermissionHost {
			t.Errorf("SetPermission(%q, %q, %q)", gotACL, gotPrincipal, gotPerm)
		}
		if got := mocks.stdout.String(); got != "Granted host on 200 to 300\n" {
			t.Errorf("stdout = %q", got)
		}
	})

	t.Run("unknown permission fails before connecting", func(t *testing.T) {
		t.Parallel()

		env, mocks := testEnv()
		err := runPermissionSet(testCmd(context.Background()), env, "200", "300", "owner")
		if !errors.Is(err, ErrInvalidPermission) {
			t.Errorf("error = %v, want ErrInvalidPermission", err)
		}
		if len(mocks.clientFactory.Calls()) != 0 {
			t.Error("client built for an invalid permission")
		}
	})
}

func TestRunPermissionPublic(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	if err := runPermissionPublic(testCmd(context.Background()), env, "200"); err != nil {
		t.Fatalf("runPermissionPublic() unexpected error: %v", err)
	}
	want := []string{"MakePublic", "Logout"}
	if got := mocks.api.Calls(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestPermissionSetCmd_Args(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"three args", []string{"200", "300", "view"}, false},
		{"public with sco only", []string{"--public", "200"}, false},
		{"missing permission", []string{"200", "300"}, true},
		{"public with extra args", []string{"--public", "200", "300"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _ := testEnv()
			cmd := PermissionCmd(env)
			cmd.SetArgs(append([]string{"set"}, tt.args...))
			cmd.SetOut(&syncBuffer{})
			cmd.SetErr(&syncBuffer{})

			err := cmd.ExecuteContext(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
