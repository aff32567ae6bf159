package auth

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"
	"time"

	"broadcast-ops-backend/internal/config"
	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
	"gopkg.in/yaml.v3"
)

// Identity is a username with its resolved workflow roles.
type Identity struct {
	Username      string               `json:"username"`
	Role          models.Role          `json:"role"`
	CallsheetRole models.CallsheetRole `json:"callsheet_role,omitempty"`
}

// RoleResolver authenticates an actor and maps them to workflow roles.
type RoleResolver interface {
	Authenticate(username, password string) (*Identity, error)
}

// roleMappingFile is the on-disk format shared by both resolvers: the static
// resolver maps usernames directly, the LDAP resolver maps directory groups.
type roleMappingFile struct {
	Users map[string]struct {
		Role          string `yaml:"role"`
		CallsheetRole string `yaml:"callsheet_role"`
	} `yaml:"users"`
	Groups map[string]struct {
		Role          string `yaml:"role"`
		CallsheetRole string `yaml:"callsheet_role"`
	} `yaml:"groups"`
}

func loadRoleMapping(path string) (*roleMappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role mapping: %w", err)
	}
	var mapping roleMappingFile
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse role mapping: %w", err)
	}
	return &mapping, nil
}

// StaticRoleResolver resolves roles from a yaml file mapping usernames to
// roles. It does not verify passwords and is intended for development and
// test environments only.
type StaticRoleResolver struct {
	mapping *roleMappingFile
}

// NewStaticRoleResolver loads the mapping file and creates a static resolver
func NewStaticRoleResolver(path string) (*StaticRoleResolver, error) {
	mapping, err := loadRoleMapping(path)
	if err != nil {
		return nil, err
	}
	return &StaticRoleResolver{mapping: mapping}, nil
}

// Authenticate resolves the username against the static mapping
func (r *StaticRoleResolver) Authenticate(username, _ string) (*Identity, error) {
	entry, ok := r.mapping.Users[username]
	if !ok {
		return nil, apperrors.ErrUnknownActor
	}
	role := models.Role(entry.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("role mapping for %q names unknown role %q", username, entry.Role)
	}
	identity := &Identity{Username: username, Role: role}
	if entry.CallsheetRole != "" {
		csRole := models.CallsheetRole(entry.CallsheetRole)
		if !csRole.IsValid() {
			return nil, fmt.Errorf("role mapping for %q names unknown callsheet role %q", username, entry.CallsheetRole)
		}
		identity.CallsheetRole = csRole
	}
	return identity, nil
}

// LDAPRoleResolver verifies credentials against the directory and maps the
// actor's group memberships to workflow roles via the mapping file.
type LDAPRoleResolver struct {
	cfg     *config.Config
	mapping *roleMappingFile
}

// NewLDAPRoleResolver creates an LDAP-backed resolver
func NewLDAPRoleResolver(cfg *config.Config) (*LDAPRoleResolver, error) {
	mapping, err := loadRoleMapping(cfg.RoleMappingFile)
	if err != nil {
		return nil, err
	}
	return &LDAPRoleResolver{cfg: cfg, mapping: mapping}, nil
}

// Authenticate binds as the actor to verify the password, then reads the
// actor's memberOf attribute and maps the first matching group to roles.
func (r *LDAPRoleResolver) Authenticate(username, password string) (*Identity, error) {
	addr := r.cfg.LDAPHost + ":" + r.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: r.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if r.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(r.cfg.LDAPTimeoutSec) * time.Second)
	}

	// Service bind to locate the actor's entry
	if err := l.Bind(r.cfg.LDAPBindDN, r.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	req := ldap.NewSearchRequest(
		r.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		r.cfg.LDAPTimeoutSec,
		false,
		"(cn="+ldap.EscapeFilter(username)+")",
		[]string{"memberOf"},
		nil,
	)
	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		return nil, apperrors.ErrUnknownActor
	}
	entry := res.Entries[0]

	// Re-bind as the actor to verify the password
	if err := l.Bind(entry.DN, password); err != nil {
		return nil, apperrors.ErrUnknownActor
	}

	identity := &Identity{Username: username}
	for _, groupDN := range entry.GetAttributeValues("memberOf") {
		cn := groupCN(groupDN)
		mapped, ok := r.mapping.Groups[cn]
		if !ok {
			continue
		}
		if identity.Role == "" && mapped.Role != "" {
			role := models.Role(mapped.Role)
			if role.IsValid() {
				identity.Role = role
			}
		}
		if identity.CallsheetRole == "" && mapped.CallsheetRole != "" {
			csRole := models.CallsheetRole(mapped.CallsheetRole)
			if csRole.IsValid() {
				identity.CallsheetRole = csRole
			}
		}
	}
	if identity.Role == "" && identity.CallsheetRole == "" {
		return nil, apperrors.ErrUnknownActor
	}
	return identity, nil
}

// groupCN extracts the common name from a group DN such as
// "CN=NOC-Operators,OU=Groups,DC=example,DC=com".
func groupCN(dn string) string {
	first := strings.SplitN(dn, ",", 2)[0]
	if strings.HasPrefix(strings.ToUpper(first), "CN=") {
		return first[3:]
	}
	return first
}
