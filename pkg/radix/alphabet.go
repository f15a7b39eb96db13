package radix

// Base64URL is the 64-character alphabet used by BaseIndex 0: the
// URL-safe Base64 character set in its natural order.
const Base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Base70 is the alphabet used by BaseIndex 1. Despite its name it holds
// 66 characters: digits, upper- and lower-case letters, and "-_.~".
const Base70 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_.~"

// Alphabets indexes the two wire alphabets by BaseIndex, matching spec §6.1.
var Alphabets = [2]string{Base64URL, Base70}
