package update

import (
	"context"
	"testing"
)

func TestCheckSkipsDevBuilds(t *testing.T) {
	if r := Check(context.Background(), "dev"); r != nil {
		t.Errorf("expected nil for dev build, got %+v", r)
	}
	if r := Check(context.Background(), ""); r != nil {
		t.Errorf("expected nil for empty version, got %+v", r)
	}
}
