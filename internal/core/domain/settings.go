package domain

// SettingsBag holds one application's settings for one user. The schema is
// per integration type; the only key currently defined is CredentialKey.
type SettingsBag map[string]any

// CredentialKey is the settings key holding an app's bearer credential.
const CredentialKey = "api_key"

// Credential returns the stored bearer credential, if present and non-empty.
func (b SettingsBag) Credential() (string, bool) {
	v, ok := b[CredentialKey]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Apply merges changes into the bag. An empty string value removes the key.
func (b SettingsBag) Apply(changes map[string]string) {
	for k, v := range changes {
		if v == "" {
			delete(b, k)
			continue
		}
		b[k] = v
	}
}

// UserAppSettings maps application ID to that app's settings bag for one
// user.
type UserAppSettings map[string]SettingsBag

// SetApp replaces appID's bag, deleting the entry when the bag is empty so
// the persisted form never contains empty leaves.
func (u UserAppSettings) SetApp(appID string, bag SettingsBag) {
	if len(bag) == 0 {
		delete(u, appID)
		return
	}
	u[appID] = bag
}

// AllUserSettings is the full persisted structure: user identifier to that
// user's per-app settings.
type AllUserSettings map[string]UserAppSettings
