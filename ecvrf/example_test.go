package ecvrf_test

import (
	"encoding/hex"
	"fmt"

	"github.com/mangekyou-network/kamui/ecvrf"
)

func Example() {
	sk, _ := hex.DecodeString("d354a0525580ab79bf67797b824a7df3ddf81ff45729175fa4d98d9f3dcd150f")
	alpha, _ := hex.DecodeString("4869204b616d756921")

	kp, err := ecvrf.KeyPairFromSecret(sk)
	if err != nil {
		panic(err)
	}
	fmt.Printf("pk = %x\n", kp.Public.Bytes())

	proof, err := kp.Prove(alpha)
	if err != nil {
		panic(err)
	}
	fmt.Printf("proof = %x\n", proof.Bytes())

	output := proof.ToHash()
	fmt.Printf("output = %x\n", output)

	if err := ecvrf.Verify(kp.Public, alpha, proof); err != nil {
		panic(err)
	}
	fmt.Println("verified")

	// Output:
	// pk = 7a66a0fe0f2bcdcea5bfb97e3e9f6b298d25899052721bc2b4f3cb570a921b23
	// proof = 54b58f527e999ceedb24485a7629e3caa9f7deb152852a0f483a6646495fa253c4131e87ff0b48fefacf4b5be04211a77390ca85553aa2c06f0023db34e7b36194eadf11539c0ef1c8dcae09aa35580a
	// output = 8d9c5b901c05a4edf4dff80bbe970db6ca782fe785ef1375989a3fdb3a93b521f4165ea3a6d1c90ae5641bb528beb98c1eed13d36fb32951ecf163b7900e3da6
	// verified
}
