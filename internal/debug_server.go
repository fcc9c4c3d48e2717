package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key          string
	Name         string
	VotingSystem string
	Users        string
	Hide         string
	Version      string
}

type PageData struct {
	Prefix string
	Items  []InspectRow
}

// StartDebugServer exposes a read-only HTML view of the stored sessions.
// Only wired when LOG_LEVEL is DEBUG; never meant for production traffic.
func StartDebugServer(db *badger.DB, port int, endpoint string) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "session:"
		}

		data := PageData{Prefix: prefix}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, sessionRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

func sessionRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:          key,
		Name:         "--------",
		VotingSystem: "-",
		Users:        "-",
		Hide:         "-",
		Version:      "-",
	}

	var session struct {
		Name         string `json:"name"`
		VotingSystem string `json:"votingSystem"`
		Users        []struct {
			UserID string  `json:"userId"`
			Point  float64 `json:"point"`
		} `json:"users"`
		Hide    bool   `json:"hide"`
		Version uint64 `json:"version"`
	}
	if err := json.Unmarshal(val, &session); err != nil {
		row.Name = "RAW (" + strconv.Itoa(len(val)) + " bytes)"
		return row
	}

	users := make([]string, 0, len(session.Users))
	for _, u := range session.Users {
		users = append(users, fmt.Sprintf("%s=%g", u.UserID, u.Point))
	}

	row.Name = session.Name
	row.VotingSystem = session.VotingSystem
	row.Users = strings.Join(users, ", ")
	row.Hide = strconv.FormatBool(session.Hide)
	row.Version = strconv.FormatUint(session.Version, 10)
	return row
}
