package header

// Item aliases shared by several headers.
type (
	// MediaRange is an Accept item: a media type with an optional weight.
	MediaRange = QualityItem[MediaType, *MediaType]
	// LanguageRange is an Accept-Language item: a language tag with an optional weight.
	LanguageRange = QualityItem[LanguageTag, *LanguageTag]
	// EncodingRange is an Accept-Encoding item: a coding with an optional weight.
	EncodingRange = QualityItem[Encoding, *Encoding]
	// CharsetRange is an Accept-Charset item: a charset with an optional weight.
	CharsetRange = QualityItem[Charset, *Charset]
)

type (
	acceptField                      struct{}
	acceptCharsetField               struct{}
	acceptEncodingField              struct{}
	acceptLanguageField              struct{}
	accessControlAllowHeadersField   struct{}
	accessControlAllowMethodsField   struct{}
	accessControlExposeHeadersField  struct{}
	accessControlMaxAgeField         struct{}
	accessControlRequestHeadersField struct{}
	accessControlRequestMethodField  struct{}
	allowField                       struct{}
	connectionField                  struct{}
	contentEncodingField             struct{}
	contentLanguageField             struct{}
	contentLengthField               struct{}
	contentLocationField             struct{}
	contentTypeField                 struct{}
	dateField                        struct{}
	eTagField                        struct{}
	expiresField                     struct{}
	fromField                        struct{}
	hostField                        struct{}
	ifMatchField                     struct{}
	ifModifiedSinceField             struct{}
	ifNoneMatchField                 struct{}
	ifUnmodifiedSinceField           struct{}
	lastEventIDField                 struct{}
	lastModifiedField                struct{}
	locationField                    struct{}
	refererField                     struct{}
	serverField                      struct{}
	transferEncodingField            struct{}
	upgradeField                     struct{}
	userAgentField                   struct{}
	varyField                        struct{}
)

func (acceptField) Name() Name                      { return "accept" }
func (acceptCharsetField) Name() Name               { return "accept-charset" }
func (acceptEncodingField) Name() Name              { return "accept-encoding" }
func (acceptLanguageField) Name() Name              { return "accept-language" }
func (accessControlAllowHeadersField) Name() Name   { return "access-control-allow-headers" }
func (accessControlAllowMethodsField) Name() Name   { return "access-control-allow-methods" }
func (accessControlExposeHeadersField) Name() Name  { return "access-control-expose-headers" }
func (accessControlMaxAgeField) Name() Name         { return "access-control-max-age" }
func (accessControlRequestHeadersField) Name() Name { return "access-control-request-headers" }
func (accessControlRequestMethodField) Name() Name  { return "access-control-request-method" }
func (allowField) Name() Name                       { return "allow" }
func (connectionField) Name() Name                  { return "connection" }
func (contentEncodingField) Name() Name             { return "content-encoding" }
func (contentLanguageField) Name() Name             { return "content-language" }
func (contentLengthField) Name() Name               { return "content-length" }
func (contentLocationField) Name() Name             { return "content-location" }
func (contentTypeField) Name() Name                 { return "content-type" }
func (dateField) Name() Name                        { return "date" }
func (eTagField) Name() Name                        { return "etag" }
func (expiresField) Name() Name                     { return "expires" }
func (fromField) Name() Name                        { return "from" }
func (hostField) Name() Name                        { return "host" }
func (ifMatchField) Name() Name                     { return "if-match" }
func (ifModifiedSinceField) Name() Name             { return "if-modified-since" }
func (ifNoneMatchField) Name() Name                 { return "if-none-match" }
func (ifUnmodifiedSinceField) Name() Name           { return "if-unmodified-since" }
func (lastEventIDField) Name() Name                 { return "last-event-id" }
func (lastModifiedField) Name() Name                { return "last-modified" }
func (locationField) Name() Name                    { return "location" }
func (refererField) Name() Name                     { return "referer" }
func (serverField) Name() Name                      { return "server" }
func (transferEncodingField) Name() Name            { return "transfer-encoding" }
func (upgradeField) Name() Name                     { return "upgrade" }
func (userAgentField) Name() Name                   { return "user-agent" }
func (varyField) Name() Name                        { return "vary" }

type (
	// Accept lists the media ranges acceptable for the response (RFC 7231 Section 5.3.2).
	Accept = NonEmptyList[acceptField, MediaRange, *MediaRange]
	// AcceptCharset lists acceptable charsets (RFC 7231 Section 5.3.3).
	AcceptCharset = NonEmptyList[acceptCharsetField, CharsetRange, *CharsetRange]
	// AcceptEncoding lists acceptable content codings (RFC 7231 Section 5.3.4).
	// An empty value means only "identity" is acceptable.
	AcceptEncoding = List[acceptEncodingField, EncodingRange, *EncodingRange]
	// AcceptLanguage lists preferred natural languages (RFC 7231 Section 5.3.5).
	AcceptLanguage = NonEmptyList[acceptLanguageField, LanguageRange, *LanguageRange]

	AccessControlAllowHeaders   = List[accessControlAllowHeadersField, FieldName, *FieldName]
	AccessControlAllowMethods   = List[accessControlAllowMethodsField, Method, *Method]
	AccessControlExposeHeaders  = List[accessControlExposeHeadersField, FieldName, *FieldName]
	AccessControlMaxAge         = Scalar[accessControlMaxAgeField, Seconds, *Seconds]
	AccessControlRequestHeaders = List[accessControlRequestHeadersField, FieldName, *FieldName]
	AccessControlRequestMethod  = Scalar[accessControlRequestMethodField, Method, *Method]

	// Allow lists the methods supported by the target resource (RFC 7231 Section 7.4.1).
	// An empty value means no methods are allowed.
	Allow = List[allowField, Method, *Method]
	// Connection lists connection options (RFC 7230 Section 6.1).
	Connection = NonEmptyList[connectionField, Token, *Token]
	// ContentEncoding lists the codings applied to the representation (RFC 7231 Section 3.1.2.2).
	ContentEncoding = NonEmptyList[contentEncodingField, Encoding, *Encoding]
	// ContentLanguage lists the languages of the intended audience (RFC 7231 Section 3.1.3.2).
	ContentLanguage = NonEmptyList[contentLanguageField, LanguageTag, *LanguageTag]
	// ContentLength is the body length in bytes (RFC 7230 Section 3.3.2).
	// It is written without the line break scan: its parser accepts digits only.
	ContentLength = Unchecked[contentLengthField, Length, *Length]
	// ContentLocation is a URI reference for the representation (RFC 7231 Section 3.1.4.2).
	ContentLocation = Text[contentLocationField]
	// ContentType is the media type of the representation (RFC 7231 Section 3.1.1.5).
	ContentType = Scalar[contentTypeField, MediaType, *MediaType]
	// Date is the origination date of the message (RFC 7231 Section 7.1.1.2).
	Date = Scalar[dateField, HTTPDate, *HTTPDate]
	// ETag is the entity tag of the selected representation (RFC 7232 Section 2.3).
	ETag = Scalar[eTagField, EntityTag, *EntityTag]
	// Expires is the date after which the response is stale (RFC 7234 Section 5.3).
	Expires = Scalar[expiresField, HTTPDate, *HTTPDate]
	// From is the email address of the user controlling the user agent (RFC 7231 Section 5.5.1).
	From = Text[fromField]
	// Host is the host and port of the target URI (RFC 7230 Section 5.4).
	// It is written without the line break scan: its parser accepts IP literals and domain names only.
	Host = Unchecked[hostField, HostPort, *HostPort]
	// IfMatch makes the request conditional on a current representation (RFC 7232 Section 3.1).
	IfMatch = AnyOrList[ifMatchField, EntityTag, *EntityTag]
	// IfModifiedSince is a conditional request date (RFC 7232 Section 3.3).
	IfModifiedSince = Scalar[ifModifiedSinceField, HTTPDate, *HTTPDate]
	// IfNoneMatch makes the request conditional on the absence of a representation (RFC 7232 Section 3.2).
	IfNoneMatch = AnyOrList[ifNoneMatchField, EntityTag, *EntityTag]
	// IfUnmodifiedSince is a conditional request date (RFC 7232 Section 3.4).
	IfUnmodifiedSince = Scalar[ifUnmodifiedSinceField, HTTPDate, *HTTPDate]
	// LastEventID is the id of the last received server-sent event.
	LastEventID = Text[lastEventIDField]
	// LastModified is the modification date of the representation (RFC 7232 Section 2.2).
	LastModified = Scalar[lastModifiedField, HTTPDate, *HTTPDate]
	// Location refers to a redirect target or a created resource (RFC 7231 Section 7.1.2).
	Location = Text[locationField]
	// Referer is the URI the request target was obtained from (RFC 7231 Section 5.5.2).
	Referer = Text[refererField]
	// Server describes the origin server software (RFC 7231 Section 7.4.2).
	Server = Text[serverField]
	// TransferEncoding lists the transfer codings applied to the body (RFC 7230 Section 3.3.1).
	TransferEncoding = NonEmptyList[transferEncodingField, Encoding, *Encoding]
	// Upgrade lists the protocols the sender would like to switch to (RFC 7230 Section 6.7).
	Upgrade = NonEmptyList[upgradeField, Protocol, *Protocol]
	// UserAgent describes the user agent software (RFC 7231 Section 5.5.3).
	UserAgent = Text[userAgentField]
	// Vary lists the request fields that influenced the response, or "*" (RFC 7231 Section 7.1.4).
	Vary = AnyOrList[varyField, FieldName, *FieldName]
)

func init() {
	RegisterType[Accept]()
	RegisterType[AcceptCharset]()
	RegisterType[AcceptEncoding]()
	RegisterType[AcceptLanguage]()
	RegisterType[AccessControlAllowHeaders]()
	RegisterType[AccessControlAllowMethods]()
	RegisterType[AccessControlExposeHeaders]()
	RegisterType[AccessControlMaxAge]()
	RegisterType[AccessControlRequestHeaders]()
	RegisterType[AccessControlRequestMethod]()
	RegisterType[Allow]()
	RegisterType[Connection]()
	RegisterType[ContentEncoding]()
	RegisterType[ContentLanguage]()
	RegisterType[ContentLength]()
	RegisterType[ContentLocation]()
	RegisterType[ContentType]()
	RegisterType[Date]()
	RegisterType[ETag]()
	RegisterType[Expires]()
	RegisterType[From]()
	RegisterType[Host]()
	RegisterType[IfMatch]()
	RegisterType[IfModifiedSince]()
	RegisterType[IfNoneMatch]()
	RegisterType[IfUnmodifiedSince]()
	RegisterType[LastEventID]()
	RegisterType[LastModified]()
	RegisterType[Location]()
	RegisterType[Referer]()
	RegisterType[Server]()
	RegisterType[TransferEncoding]()
	RegisterType[Upgrade]()
	RegisterType[UserAgent]()
	RegisterType[Vary]()
}
