package iso8583

// opt is a small helper for building the options map DeclareField expects,
// keeping the table below readable.
func opt(kv ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func fixed(n int) map[string]interface{}    { return opt("length", n) }
func varLen(max int) map[string]interface{} { return opt("max", max) }

// Default1987 returns a Family declaring the ISO 8583-1:1987 field set,
// the table every packager in the pack ships as its out-of-the-box
// default. Field 1 (the bitmap) is not declared here: the message
// engine handles it structurally, never as a data field.
func Default1987() *Family {
	b := NewFamily("iso8583-1987")
	b.DeclareMTICodec(ClassN, Fixed, fixed(4))

	b.DeclareField(2, "Primary Account Number", ClassN, LLVAR, varLen(19))
	b.DeclareField(3, "Processing Code", ClassN, Fixed, fixed(6))
	b.DeclareField(4, "Amount, Transaction", ClassN, Fixed, fixed(12))
	b.DeclareField(5, "Amount, Settlement", ClassN, Fixed, fixed(12))
	b.DeclareField(6, "Amount, Cardholder Billing", ClassN, Fixed, fixed(12))
	b.DeclareField(7, "Transmission Date & Time", ClassN, Fixed, fixed(10))
	b.DeclareField(8, "Amount, Cardholder Billing Fee", ClassN, Fixed, fixed(8))
	b.DeclareField(9, "Conversion Rate, Settlement", ClassN, Fixed, fixed(8))
	b.DeclareField(10, "Conversion Rate, Cardholder Billing", ClassN, Fixed, fixed(8))
	b.DeclareField(11, "System Trace Audit Number", ClassN, Fixed, fixed(6))
	b.DeclareField(12, "Time, Local Transaction", ClassN, Fixed, fixed(6))
	b.DeclareField(13, "Date, Local Transaction", ClassN, Fixed, fixed(4))
	b.DeclareField(14, "Date, Expiration", ClassN, Fixed, fixed(4))
	b.DeclareField(15, "Date, Settlement", ClassN, Fixed, fixed(4))
	b.DeclareField(16, "Date, Conversion", ClassN, Fixed, fixed(4))
	b.DeclareField(17, "Date, Capture", ClassN, Fixed, fixed(4))
	b.DeclareField(18, "Merchant Type", ClassN, Fixed, fixed(4))
	b.DeclareField(19, "Acquiring Institution Country Code", ClassN, Fixed, fixed(3))
	b.DeclareField(20, "PAN Extended, Country Code", ClassN, Fixed, fixed(3))
	b.DeclareField(21, "Forwarding Institution Country Code", ClassN, Fixed, fixed(3))
	b.DeclareField(22, "Point of Service Entry Mode", ClassN, Fixed, fixed(3))
	b.DeclareField(23, "Application PAN Sequence Number", ClassN, Fixed, fixed(3))
	b.DeclareField(24, "Network International Identifier", ClassN, Fixed, fixed(3))
	b.DeclareField(25, "Point of Service Condition Code", ClassN, Fixed, fixed(2))
	b.DeclareField(26, "Point of Service Capture Code", ClassN, Fixed, fixed(2))
	b.DeclareField(27, "Authorizing Identification Response Length", ClassN, Fixed, fixed(1))
	b.DeclareField(28, "Amount, Transaction Fee", ClassN, Fixed, fixed(9))
	b.DeclareField(29, "Amount, Settlement Fee", ClassN, Fixed, fixed(9))
	b.DeclareField(30, "Amount, Transaction Processing Fee", ClassN, Fixed, fixed(9))
	b.DeclareField(31, "Amount, Settlement Processing Fee", ClassN, Fixed, fixed(9))
	b.DeclareField(32, "Acquiring Institution Identification Code", ClassN, LLVAR, varLen(11))
	b.DeclareField(33, "Forwarding Institution Identification Code", ClassN, LLVAR, varLen(11))
	b.DeclareField(34, "Primary Account Number, Extended", ClassANS, LLVAR, varLen(28))
	b.DeclareField(35, "Track 2 Data", ClassANS, LLVAR, varLen(37))
	b.DeclareField(36, "Track 3 Data", ClassANS, LLLVAR, varLen(104))
	b.DeclareField(37, "Retrieval Reference Number", ClassANS, Fixed, fixed(12))
	b.DeclareField(38, "Authorization Identification Response", ClassANS, Fixed, fixed(6))
	b.DeclareField(39, "Response Code", ClassANS, Fixed, fixed(2))
	b.DeclareField(40, "Service Restriction Code", ClassANS, Fixed, fixed(3))
	b.DeclareField(41, "Card Acceptor Terminal Identification", ClassANS, Fixed, fixed(8))
	b.DeclareField(42, "Card Acceptor Identification Code", ClassANS, Fixed, fixed(15))
	b.DeclareField(43, "Card Acceptor Name/Location", ClassANS, Fixed, fixed(40))
	b.DeclareField(44, "Additional Response Data", ClassANS, LLVAR, varLen(25))
	b.DeclareField(45, "Track 1 Data", ClassANS, LLVAR, varLen(76))
	b.DeclareField(46, "Additional Data, ISO", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(47, "Additional Data, National", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(48, "Additional Data, Private", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(49, "Currency Code, Transaction", ClassANS, Fixed, fixed(3))
	b.DeclareField(50, "Currency Code, Settlement", ClassANS, Fixed, fixed(3))
	b.DeclareField(51, "Currency Code, Cardholder Billing", ClassANS, Fixed, fixed(3))
	b.DeclareField(52, "Personal Identification Number Data", ClassB, Fixed, fixed(8))
	b.DeclareField(53, "Security Related Control Information", ClassN, Fixed, fixed(16))
	b.DeclareField(54, "Additional Amounts", ClassANS, LLLVAR, varLen(120))
	b.DeclareField(55, "ICC Data", ClassTLV, LLLVAR, varLen(999))
	b.DeclareField(56, "Reserved, ISO", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(57, "Reserved, National", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(58, "Reserved, National", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(59, "Reserved, National", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(60, "Reserved, Private", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(61, "Reserved, Private", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(62, "Reserved, Private", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(63, "Reserved, Private", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(64, "Message Authentication Code", ClassB, Fixed, fixed(8))

	b.DeclareField(65, "Extended Bitmap Indicator", ClassB, Fixed, fixed(1))
	b.DeclareField(66, "Settlement Code", ClassN, Fixed, fixed(1))
	b.DeclareField(67, "Extended Payment Code", ClassN, Fixed, fixed(2))
	b.DeclareField(68, "Receiving Institution Country Code", ClassN, Fixed, fixed(3))
	b.DeclareField(69, "Settlement Institution Country Code", ClassN, Fixed, fixed(3))
	b.DeclareField(70, "Network Management Information Code", ClassN, Fixed, fixed(3))
	b.DeclareField(71, "Message Number", ClassN, Fixed, fixed(4))
	b.DeclareField(72, "Message Number, Last", ClassN, Fixed, fixed(4))
	b.DeclareField(73, "Date, Action", ClassN, Fixed, fixed(6))
	b.DeclareField(74, "Credits, Number", ClassN, Fixed, fixed(10))
	b.DeclareField(75, "Credits, Reversal Number", ClassN, Fixed, fixed(10))
	b.DeclareField(76, "Debits, Number", ClassN, Fixed, fixed(10))
	b.DeclareField(77, "Debits, Reversal Number", ClassN, Fixed, fixed(10))
	b.DeclareField(78, "Transfer, Number", ClassN, Fixed, fixed(10))
	b.DeclareField(79, "Transfer, Reversal Number", ClassN, Fixed, fixed(10))
	b.DeclareField(80, "Inquiries, Number", ClassN, Fixed, fixed(10))
	b.DeclareField(81, "Authorizations, Number", ClassN, Fixed, fixed(10))
	b.DeclareField(82, "Credits, Processing Fee Amount", ClassN, Fixed, fixed(12))
	b.DeclareField(83, "Credits, Transaction Fee Amount", ClassN, Fixed, fixed(12))
	b.DeclareField(84, "Debits, Processing Fee Amount", ClassN, Fixed, fixed(12))
	b.DeclareField(85, "Debits, Transaction Fee Amount", ClassN, Fixed, fixed(12))
	b.DeclareField(86, "Credits, Amount", ClassN, Fixed, fixed(16))
	b.DeclareField(87, "Credits, Reversal Amount", ClassN, Fixed, fixed(16))
	b.DeclareField(88, "Debits, Amount", ClassN, Fixed, fixed(16))
	b.DeclareField(89, "Debits, Reversal Amount", ClassN, Fixed, fixed(16))
	b.DeclareField(90, "Original Data Elements", ClassN, Fixed, fixed(42))
	b.DeclareField(91, "File Update Code", ClassANS, Fixed, fixed(1))
	b.DeclareField(92, "File Security Code", ClassANS, Fixed, fixed(2))
	b.DeclareField(93, "Response Indicator", ClassANS, Fixed, fixed(5))
	b.DeclareField(94, "Service Indicator", ClassANS, Fixed, fixed(7))
	b.DeclareField(95, "Replacement Amounts", ClassANS, Fixed, fixed(42))
	b.DeclareField(96, "Message Security Code", ClassB, Fixed, fixed(8))
	b.DeclareField(97, "Amount, Net Settlement", ClassN, Fixed, fixed(17))
	b.DeclareField(98, "Payee", ClassANS, Fixed, fixed(25))
	b.DeclareField(99, "Settlement Institution Identification Code", ClassN, LLVAR, varLen(11))
	b.DeclareField(100, "Receiving Institution Identification Code", ClassN, LLVAR, varLen(11))
	b.DeclareField(101, "File Name", ClassANS, LLVAR, varLen(17))
	b.DeclareField(102, "Account Identification 1", ClassANS, LLVAR, varLen(28))
	b.DeclareField(103, "Account Identification 2", ClassANS, LLVAR, varLen(28))
	b.DeclareField(104, "Transaction Description", ClassANS, LLLVAR, varLen(100))
	b.DeclareField(105, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(106, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(107, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(108, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(109, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(110, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(111, "Reserved for ISO Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(112, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(113, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(114, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(115, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(116, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(117, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(118, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(119, "Reserved for National Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(120, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(121, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(122, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(123, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(124, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(125, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(126, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(127, "Reserved for Private Use", ClassANS, LLLVAR, varLen(999))
	b.DeclareField(128, "Message Authentication Code", ClassB, Fixed, fixed(8))

	b.DeclareAlias(2, "pan")
	b.DeclareAlias(3, "processing_code")
	b.DeclareAlias(4, "amount")
	b.DeclareAlias(7, "transmission_datetime")
	b.DeclareAlias(11, "stan")
	b.DeclareAlias(12, "local_time")
	b.DeclareAlias(13, "local_date")
	b.DeclareAlias(37, "rrn")
	b.DeclareAlias(39, "response_code")
	b.DeclareAlias(41, "terminal_id")
	b.DeclareAlias(42, "merchant_id")
	b.DeclareAlias(49, "currency_code")
	b.DeclareAlias(52, "pin_block")
	b.DeclareAlias(55, "icc_data")
	b.DeclareAlias(70, "network_management_code")

	f, err := b.Build()
	if err != nil {
		// The table above is fixed at compile time and known conflict-free;
		// a failure here means the table was edited incorrectly.
		panic(err)
	}
	return f
}
