package cli

import (
	"fmt"
	"io"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
	"github.com/alnah/go-adobeconnect/internal/format"
)

// printSco writes a sco as aligned key/value lines.
func printSco(w io.Writer, sco adobeconnect.Sco) {
	_, _ = fmt.Fprintf(w, "id:          %s\n", sco.ID)
	_, _ = fmt.Fprintf(w, "name:        %s\n", format.Value(sco.Name))
	_, _ = fmt.Fprintf(w, "type:        %s\n", format.Value(sco.Type))
	_, _ = fmt.Fprintf(w, "folder-id:   %s\n", format.Value(sco.FolderID))
	_, _ = fmt.Fprintf(w, "url-path:    %s\n", format.Value(sco.URLPath))
	_, _ = fmt.Fprintf(w, "when:        %s\n", format.Window(sco.DateBegin, sco.DateEnd))
	if sco.Description != "" {
		_, _ = fmt.Fprintf(w, "description: %s\n", sco.Description)
	}
}

// printPrincipal writes a principal as aligned key/value lines.
func printPrincipal(w io.Writer, p adobeconnect.Principal) {
	_, _ = fmt.Fprintf(w, "id:    %s\n", p.ID)
	_, _ = fmt.Fprintf(w, "login: %s\n", format.Value(p.Login))
	_, _ = fmt.Fprintf(w, "name:  %s\n", format.Value(p.Name))
	_, _ = fmt.Fprintf(w, "email: %s\n", format.Value(p.Email))
	_, _ = fmt.Fprintf(w, "type:  %s\n", format.Value(p.Type))
}
