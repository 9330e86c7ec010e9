/*
Package seal provides optional authenticated encryption of a message before it's hidden in an image.

The XOR screen applied by package lsb keeps the format compatible with existing images, but it offers no real secrecy.
Sealing a message first uses AES-GCM with a key derived from the passphrase using scrypt, so a wrong passphrase is reported as an error instead of producing garbled text.

# Sealed layout:

  - The scrypt parameters (iterations, relative block size, CPU cost, key size) in big endian order.
  - A random salt, the same length as the key.
  - A random nonce followed by the AES-GCM cipher text.

The parameters are stored so that Open doesn't need to be told how the payload was sealed.
They're validated before use, since they come from an untrusted payload.

# General guidelines:
  - Sealed payloads are binary, and may contain the lsb end of message Marker. If that happens, recovery truncates the payload and Open reports ErrInvalidData or an authentication failure.
  - Seal requires a non-empty passphrase.
  - The default parameters are tuned for interactive use. Only change them if you know what you're doing.
*/
package seal
