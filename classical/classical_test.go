package classical

import (
	"context"
	"encoding/json"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestToSystematicToNonSystematic(t *testing.T) {
	vec := mat.DOKVec(100)
	columns := make([]int, vec.Len())
	for i := 0; i < vec.Len(); i++ {
		vec.Set(i, rand.Intn(2))
		columns[i] = i
	}

	rand.Shuffle(len(columns), func(i, j int) {
		tmp := columns[i]
		columns[i] = columns[j]
		columns[j] = tmp
	})

	swapped := ToSystematic(vec, columns)
	actual := ToNonSystematic(swapped, columns)

	if !reflect.DeepEqual(vec, actual) {
		t.Fatalf("expected %v but found %v", vec, actual)
	}
}

func TestParameters(t *testing.T) {
	tests := []struct {
		H       mat.SparseMat
		n, k, d int
	}{
		//repetition [3,1,3]
		{mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1), 3, 1, 3},
		//Hamming [7,4,3]
		{mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1), 7, 4, 3},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c, err := FromParityCheck(context.Background(), test.H, 0)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			n, k, d, err := c.Parameters(context.Background(), 0)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if n != test.n || k != test.k || d != test.d {
				t.Fatalf("expected [%v,%v,%v] but found [%v,%v,%v]", test.n, test.k, test.d, n, k, d)
			}
		})
	}
}

func TestEncodeSyndrome(t *testing.T) {
	H := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)
	c, err := FromParityCheck(context.Background(), H, 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if !c.Validate() {
		t.Fatal("expected a valid code")
	}

	//every codeword must satisfy every parity check
	for m := 0; m < 1<<c.MessageLength(); m++ {
		message := mat.CSRVec(c.MessageLength())
		for i := 0; i < c.MessageLength(); i++ {
			message.Set(i, (m>>i)&1)
		}

		codeword := c.Encode(message)
		if !c.Syndrome(codeword).IsZero() {
			t.Fatalf("expected zero syndrome for codeword of message %v", message)
		}

		decoded := c.Decode(codeword)
		if decoded.HammingDistance(message) != 0 {
			t.Fatalf("expected %v but found %v", message, decoded)
		}
	}
}

func TestCodeJSON(t *testing.T) {
	H := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)
	c, err := FromParityCheck(context.Background(), H, 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	bs, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	var actual Code
	err = json.Unmarshal(bs, &actual)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if !actual.H.Equals(c.H) {
		t.Fatalf("expected equal H matrices")
	}
	if !actual.Validate() {
		t.Fatal("expected valid code after JSON round trip")
	}
}
