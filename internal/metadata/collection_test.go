package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/algoport/algoport/internal/domain"
)

func nft(id uint64, url string) domain.ClassifiedAsset {
	return domain.ClassifiedAsset{
		AssetHolding: domain.AssetHolding{AssetID: id, Amount: 1, Total: 1, URL: url},
		Class:        domain.ClassNonFungible,
	}
}

func TestResolveCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ipfs/QmOne":
			w.Write([]byte(`{"name": "One", "image": "ipfs://QmOneImage"}`))
		case "/ipfs/QmTwo":
			http.Error(w, "not found", http.StatusNotFound)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	col := NewCollection(NewClient(server.URL + "/ipfs/"))

	items := col.Resolve(context.Background(), []domain.ClassifiedAsset{
		nft(1, "ipfs://QmOne"),
		nft(2, "ipfs://QmTwo"), // document missing: holding kept, metadata nil
		nft(3, ""),             // no URL: nothing to fetch
	})

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Metadata["name"] != "One" {
		t.Errorf(`Metadata["name"] = %v, want One`, items[0].Metadata["name"])
	}
	if want := server.URL + "/ipfs/QmOneImage"; items[0].ImageURL != want {
		t.Errorf("ImageURL = %q, want %q", items[0].ImageURL, want)
	}
	if items[1].Metadata != nil {
		t.Error("a failing lookup must leave the item bare, not drop it")
	}
	if items[1].AssetID != 2 {
		t.Errorf("items[1].AssetID = %d, want 2", items[1].AssetID)
	}
	if items[2].AssetID != 3 || items[2].Metadata != nil {
		t.Errorf("items[2] = %+v, want bare holding for asset 3", items[2])
	}
}
