package skill

import "testing"

func TestKindComplement(t *testing.T) {
	if got := KindOffer.Complement(); got != KindRequest {
		t.Fatalf("offer complement = %q", got)
	}
	if got := KindRequest.Complement(); got != KindOffer {
		t.Fatalf("request complement = %q", got)
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindOffer, KindRequest} {
		if !k.Valid() {
			t.Fatalf("%q should be valid", k)
		}
	}
	for _, k := range []Kind{"", "trade", "OFFER"} {
		if k.Valid() {
			t.Fatalf("%q should be invalid", k)
		}
	}
}
