/*
Package xor provides the repeating-key XOR transform used to screen a message before it's hidden in an image.

Note that this is NOT encryption, since it is easily reversible by anyone holding the key, and a short key repeats over a longer message.
It's intended to keep the hidden bytes from reading as plain text when extracted without the password.

# How it works:

Byte i of the input is combined with byte (i mod len(key)) of the key using a bitwise XOR.
Once a key byte is used, the screen progresses to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.

Applying the same key twice yields the original input, so the same function both screens and unscreens.
An empty key leaves the input unchanged.

# Important note:

The same key must be provided to accurately reverse the process.
Failing to do so results in garbled data, not an error.
*/
package xor
