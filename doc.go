/*
Package jstore implements durable, crash-safe persistence of dynamic data
(mappings and sequences of scalars and nested containers) to a single file.

The purpose of this package is to serve as the storage building block for
application state kept in plain JSON or YAML files: load a value at startup,
mutate it in memory, save it back. It is general purpose enough to be used
anywhere a single file of structured data needs to survive crashes.

# Atomic Replacement

A file written by Save is never observable in a partial state. Save stages
the full encoded content into a temporary file in the same directory as the
target, then renames it over the target. Rename within one directory is
atomic on POSIX systems, so at every instant the target holds either the
previous complete content or the new complete content. The same-directory
requirement is load bearing: a rename across filesystems is not atomic, so
the temporary file is never placed anywhere else.

The temporary file is created with a restrictive mode (owner read/write
only). Saving with private set leaves it that way; otherwise the mode is
relaxed to world-readable before the rename. Whatever happens, the temporary
file does not outlive the Save call: it is either consumed by the rename or
removed on the way out.

# Codecs

The encoding itself is delegated to a Codec. The JSON codec is the default
and encodes deterministically: mapping keys come out sorted at every level
and the output is indented, so saving the same logical value always produces
byte-identical files. The YAML codec does the same over gopkg.in/yaml.v3.
Funcs adapts any other marshal/unmarshal function pair.

# Diagnosing Bad Data

Encoding libraries report that a value cannot be serialized, but not where
the offending piece sits inside a deeply nested structure. When Save fails
to encode, it walks the value with FindUnserializablePaths and reports every
unencodable leaf and mapping key as a path expression rooted at $, for
example:

	$.users[3].session<key: (1+0i)>
	$.cache.pending[0]

The walk probes whole subtrees first and only descends into the ones that
fail, so the cost is proportional to the failing region, not the whole
structure. It is still slow (one encoder probe per visited node) and is only
run on the error path.

# Errors

Load and Save classify every failure: DecodeError for malformed content,
ReadError for an unreadable file, SerializationError for a value the codec
rejects, WriteError for a failed durable write. Each carries the target
filename and unwraps to the underlying cause. A missing file is not an
error; Load returns the caller's default instead.
*/
package jstore
