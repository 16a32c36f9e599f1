package pagination

import "testing"

func TestPageRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"defaults pass through", PageRequest{Page: 0, Size: 10}, 0, 10},
		{"negative page clamps to zero", PageRequest{Page: -3, Size: 5}, 0, 5},
		{"unsupported size falls back", PageRequest{Page: 1, Size: 7}, 1, DefaultSize},
		{"zero size falls back", PageRequest{Page: 2, Size: 0}, 2, DefaultSize},
		{"all size choices accepted", PageRequest{Page: 0, Size: 20}, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in.Page != tt.wantPage || tt.in.Size != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d",
					tt.in.Page, tt.in.Size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestDefaultPageRequest(t *testing.T) {
	req := DefaultPageRequest()
	if req.Page != 0 || req.Size != DefaultSize {
		t.Errorf("unexpected defaults: %+v", req)
	}
}
