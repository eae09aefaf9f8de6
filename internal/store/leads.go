package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"leadscout-engine/internal/domain"
)

type Lead struct {
	ID            int64                     `json:"id"`
	Company       string                    `json:"company"`
	PrimaryDomain string                    `json:"primaryDomain"`
	ParentDomain  string                    `json:"parentDomain,omitempty"`
	EmployeeSize  string                    `json:"employeeSize,omitempty"`
	LinkedInURLs  []string                  `json:"linkedinUrls"`
	Domains       []string                  `json:"domains"`
	ListingTitle  string                    `json:"listingTitle,omitempty"`
	ListingURL    string                    `json:"listingUrl,omitempty"`
	CreatedAt     string                    `json:"createdAt"`
	Contacts      []domain.ContactCandidate `json:"contacts"`
}

type ListLeadsOpts struct {
	Company string
	Limit   int
}

// InsertLead persists one resolution result with its contacts in a single
// transaction and returns the new lead id.
func InsertLead(ctx context.Context, db *sql.DB, res domain.CompanyContactResult, listing domain.RawListing) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	urlsJSON, _ := json.Marshal(emptyIfNil(res.LinkedInURLs))
	domainsJSON, _ := json.Marshal(emptyIfNil(res.Domains))

	r, err := tx.ExecContext(ctx, `
INSERT INTO leads(company, primary_domain, parent_domain, employee_size,
  linkedin_urls, domains, listing_title, listing_url, created_at)
VALUES(?,?,?,?,?,?,?,?,?);`,
		res.Company, res.PrimaryDomain, res.ParentDomain, res.EmployeeSize,
		string(urlsJSON), string(domainsJSON),
		listing.Title, listing.URL,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert lead %q: %w", res.Company, err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, c := range res.Contacts {
		matches := 0
		if c.MatchesDomain {
			matches = 1
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO lead_contacts(lead_id, name, title, email, confidence, rank, score,
  origin_company, origin_domain, source_tag, matches_domain)
VALUES(?,?,?,?,?,?,?,?,?,?,?);`,
			id, c.Name, c.Title, c.Email, c.Confidence, c.Rank, c.Score,
			c.OriginCompany, c.OriginDomain, c.SourceTag, matches,
		); err != nil {
			return 0, fmt.Errorf("insert contact %q: %w", c.Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListLeads returns leads newest first, contacts attached in stored order.
func ListLeads(ctx context.Context, db *sql.DB, opts ListLeadsOpts) ([]Lead, error) {
	if opts.Limit <= 0 || opts.Limit > 1000 {
		opts.Limit = 200
	}

	where := ""
	args := []any{}
	if opts.Company != "" {
		where = "WHERE company LIKE ?"
		args = append(args, "%"+opts.Company+"%")
	}
	args = append(args, opts.Limit)

	query := fmt.Sprintf(`
SELECT id, company, primary_domain, parent_domain, employee_size,
  linkedin_urls, domains, listing_title, listing_url, created_at
FROM leads
%s
ORDER BY id DESC
LIMIT ?;`, where)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		var urlsJSON, domainsJSON string
		if err := rows.Scan(
			&l.ID, &l.Company, &l.PrimaryDomain, &l.ParentDomain, &l.EmployeeSize,
			&urlsJSON, &domainsJSON, &l.ListingTitle, &l.ListingURL, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(urlsJSON), &l.LinkedInURLs)
		_ = json.Unmarshal([]byte(domainsJSON), &l.Domains)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		contacts, err := leadContacts(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Contacts = contacts
	}
	return out, nil
}

func leadContacts(ctx context.Context, db *sql.DB, leadID int64) ([]domain.ContactCandidate, error) {
	rows, err := db.QueryContext(ctx, `
SELECT name, title, email, confidence, rank, score,
  origin_company, origin_domain, source_tag, matches_domain
FROM lead_contacts
WHERE lead_id = ?
ORDER BY id;`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContactCandidate
	for rows.Next() {
		var c domain.ContactCandidate
		var matches int
		if err := rows.Scan(
			&c.Name, &c.Title, &c.Email, &c.Confidence, &c.Rank, &c.Score,
			&c.OriginCompany, &c.OriginDomain, &c.SourceTag, &matches,
		); err != nil {
			return nil, err
		}
		c.MatchesDomain = matches != 0
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountLeads reports totals for the stats endpoint.
func CountLeads(ctx context.Context, db *sql.DB) (leads, contacts int, err error) {
	if err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads;`).Scan(&leads); err != nil {
		return 0, 0, err
	}
	if err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lead_contacts;`).Scan(&contacts); err != nil {
		return 0, 0, err
	}
	return leads, contacts, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
