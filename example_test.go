package ecurve_test

import (
	"encoding/hex"
	"fmt"
	"math/big"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
)

func ExamplePoint_Multiply() {
	c := ecurve.Secp256k1()
	p := c.G().Multiply(big.NewInt(2))

	fmt.Printf("%x\n", p.AffineX())
	fmt.Printf("%x\n", p.AffineY())
	// Output:
	// c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5
	// 1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a
}

func ExampleCurve_DecodePoint() {
	c := ecurve.Secp256k1()
	data, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	p, err := c.DecodePoint(data)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Equal(c.G()))
	fmt.Println(len(p.Encode(false)))
	// Output:
	// true
	// 65
}
