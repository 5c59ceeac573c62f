package core

import (
	"sort"
	"strings"
	"time"

	"bookify-backend-go/internal/models"
)

// mergeAccountSources joins the three identity sources into one merged
// sequence. It is a pure function: no I/O, deterministic output.
//
// For each provider account, profile fields win over provider fields when
// both are present, with the provider value as fallback. Profiles without a
// matching account still appear (a leftover identity) and get their role
// resolved the same way. The result is sorted by created_at descending;
// records with no timestamp carry the empty string and therefore sort last.
func mergeAccountSources(
	accounts []models.Account,
	profiles map[string]*models.Profile,
	roles map[string]models.Role,
) []models.AccountRecord {
	records := make([]models.AccountRecord, 0, len(accounts)+len(profiles))
	seen := make(map[string]bool, len(accounts))

	for _, account := range accounts {
		profile := profiles[account.ID]

		record := models.AccountRecord{
			ID:        account.ID,
			Name:      strings.TrimSpace(account.DisplayName),
			Email:     strings.TrimSpace(account.Email),
			CreatedAt: account.CreatedAt,
			Roles:     rolesFor(roles, account.ID),
		}
		if profile != nil {
			if name := strings.TrimSpace(profile.Name); name != "" {
				record.Name = name
			}
			if email := strings.TrimSpace(profile.Email); email != "" {
				record.Email = email
			}
			record.Phone = profile.Phone
			record.Address = profile.Address
			if ts := formatTimestamp(profile.CreatedAt); ts != "" {
				record.CreatedAt = ts
			}
		}
		records = append(records, record)
		seen[account.ID] = true
	}

	// Profiles with no matching provider account: leftover identities that
	// should still show up in the listing. Appended in sorted UID order so
	// leftovers with equal timestamps keep a deterministic relative order
	// under the stable sort below.
	var leftoverUIDs []string
	for uid := range profiles {
		if !seen[uid] {
			leftoverUIDs = append(leftoverUIDs, uid)
		}
	}
	sort.Strings(leftoverUIDs)
	for _, uid := range leftoverUIDs {
		profile := profiles[uid]
		records = append(records, models.AccountRecord{
			ID:        uid,
			Name:      profile.Name,
			Email:     profile.Email,
			Phone:     profile.Phone,
			Address:   profile.Address,
			CreatedAt: formatTimestamp(profile.CreatedAt),
			Roles:     rolesFor(roles, uid),
		})
	}

	// created_at descending; empty timestamps compare lowest and land last.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records
}

func rolesFor(roles map[string]models.Role, uid string) []models.Role {
	if role, ok := roles[uid]; ok {
		return []models.Role{role}
	}
	return []models.Role{}
}

func formatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
