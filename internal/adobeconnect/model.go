package adobeconnect

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// dateLayout is the timestamp format the server emits and accepts.
const dateLayout = "2006-01-02T15:04:05.000-07:00"

// CommonInfo is the reply to common-info.
type CommonInfo struct {
	Version   string
	Host      string
	AccountID string
	// Cookie is the session token issued before login.
	Cookie string
	// Login is set when the session is already authenticated.
	Login string
}

// Sco is a shareable content object: meeting, folder, shortcut.
type Sco struct {
	ID          string
	FolderID    string
	Type        string
	Name        string
	Description string
	URLPath     string
	DateBegin   time.Time
	DateEnd     time.Time
}

// Principal is a user or group.
type Principal struct {
	ID          string
	AccountID   string
	Type        string
	Login       string
	Name        string
	Email       string
	HasChildren bool
}

// Permission is a principal's role on a sco.
type Permission string

// Permission values accepted by permissions-update.
const (
	PermissionHost       Permission = "host"
	PermissionMiniHost   Permission = "mini-host"
	PermissionView       Permission = "view"
	PermissionViewHidden Permission = "view-hidden"
	PermissionRemove     Permission = "remove"
	PermissionDenied     Permission = "denied"
)

// validPermissions lists the accepted values in display order.
var validPermissions = []Permission{
	PermissionHost, PermissionMiniHost, PermissionView,
	PermissionViewHidden, PermissionRemove, PermissionDenied,
}

// Permissions returns the accepted permission values in display order.
func Permissions() []Permission {
	return append([]Permission(nil), validPermissions...)
}

// ParsePermission validates a permission string.
func ParsePermission(s string) (Permission, bool) {
	for _, p := range validPermissions {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// publicAccessPrincipal is the pseudo principal that stands for anonymous users.
const publicAccessPrincipal = "public-access"

// MeetingRequest holds the fields of a meeting creation or update.
type MeetingRequest struct {
	Name        string
	Description string
	// URLPath is the custom room path; empty lets the server pick one.
	URLPath string
	// TemplateID is the sco-id of a template to copy.
	TemplateID string
	Begin      time.Time
	End        time.Time
}

// PrincipalRequest holds the fields of a user creation.
type PrincipalRequest struct {
	Login     string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}

func childTime(el *etree.Element, tag string) time.Time {
	s := childText(el, tag)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseCommonInfo(doc *etree.Document) (CommonInfo, bool) {
	common := doc.FindElement("//common")
	if common == nil {
		return CommonInfo{}, false
	}
	info := CommonInfo{
		Version: childText(common, "version"),
		Host:    childText(common, "host"),
		Cookie:  childText(common, "cookie"),
	}
	if account := common.SelectElement("account"); account != nil {
		info.AccountID = account.SelectAttrValue("account-id", "")
	}
	if user := common.SelectElement("user"); user != nil {
		info.Login = childText(user, "login")
	}
	return info, true
}

func parseSco(el *etree.Element) Sco {
	return Sco{
		ID:          el.SelectAttrValue("sco-id", ""),
		FolderID:    el.SelectAttrValue("folder-id", ""),
		Type:        el.SelectAttrValue("type", ""),
		Name:        childText(el, "name"),
		Description: childText(el, "description"),
		URLPath:     childText(el, "url-path"),
		DateBegin:   childTime(el, "date-begin"),
		DateEnd:     childTime(el, "date-end"),
	}
}

func parsePrincipal(el *etree.Element) Principal {
	hasChildren, _ := strconv.ParseBool(el.SelectAttrValue("has-children", "false"))
	return Principal{
		ID:          el.SelectAttrValue("principal-id", ""),
		AccountID:   el.SelectAttrValue("account-id", ""),
		Type:        el.SelectAttrValue("type", ""),
		Login:       childText(el, "login"),
		Name:        childText(el, "name"),
		Email:       childText(el, "email"),
		HasChildren: hasChildren,
	}
}
